package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oneconcern/gitlite/pkg/repo"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new, empty repository",
	Long: `Initialize a new, empty repository at the given directory, default the
current one. The directory is created when missing; initializing over an
already populated metadata directory fails.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		r, err := repo.Create(path, repo.WithLogger(config.logger()))
		if err != nil {
			wrapFatalln("initializing repository at "+path, err)
			return
		}
		fmt.Printf("Initialized empty repository in %s\n", r.GitDir())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
