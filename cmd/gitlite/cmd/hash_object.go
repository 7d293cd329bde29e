package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oneconcern/gitlite/pkg/core"
	"github.com/oneconcern/gitlite/pkg/model"
	"github.com/oneconcern/gitlite/pkg/repo"
)

var (
	hashObjectKind  string
	hashObjectWrite bool
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <file>",
	Short: "Compute object ID and optionally create an object from a file",
	Long: `Compute the content address a file would be stored under, and with -w
actually write it into the object database of the enclosing repository.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := model.ParseKind(hashObjectKind)
		if err != nil {
			wrapFatalln("invalid object kind", err)
			return
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			wrapFatalln("reading "+args[0], err)
			return
		}

		var r *repo.Repository
		if hashObjectWrite {
			r, err = repo.Find(".", true, repo.WithLogger(config.logger()))
			if err != nil {
				wrapFatalln("locating repository", err)
				return
			}
		}

		id, err := core.HashObject(context.Background(), r, kind, data, hashObjectWrite)
		if err != nil {
			wrapFatalln("hashing "+args[0], err)
			return
		}
		fmt.Println(id.String())
	},
}

func init() {
	hashObjectCmd.Flags().StringVarP(&hashObjectKind, "type", "t", "blob",
		"kind of object to create (blob, tree, commit, tag)")
	hashObjectCmd.Flags().BoolVarP(&hashObjectWrite, "write", "w", false,
		"actually write the object into the object database")
	rootCmd.AddCommand(hashObjectCmd)
}
