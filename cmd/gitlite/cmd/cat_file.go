package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/oneconcern/gitlite/pkg/core"
	"github.com/oneconcern/gitlite/pkg/model"
	"github.com/oneconcern/gitlite/pkg/repo"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file <kind> <object-id>",
	Short: "Provide content of repository objects",
	Long: `Print the canonical serialization of an object to stdout.

The kind is checked against the stored object: asking for a blob by the
ID of a commit is an error.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := model.ParseKind(args[0])
		if err != nil {
			wrapFatalln("invalid object kind", err)
			return
		}
		id, err := model.ParseObjectID(args[1])
		if err != nil {
			wrapFatalln("invalid object id", err)
			return
		}

		r, err := repo.Find(".", true, repo.WithLogger(config.logger()))
		if err != nil {
			wrapFatalln("locating repository", err)
			return
		}

		obj, err := core.ReadObject(context.Background(), r, id)
		if err != nil {
			wrapFatalln("reading object "+id.String(), err)
			return
		}
		if obj.Kind() != kind {
			wrapFatalln("object "+id.String()+" is a "+obj.Kind().String()+", not a "+kind.String(), nil)
			return
		}
		_, _ = os.Stdout.Write(obj.Serialize())
	},
}

func init() {
	rootCmd.AddCommand(catFileCmd)
}
