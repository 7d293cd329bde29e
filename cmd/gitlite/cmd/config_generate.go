package cmd

import (
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long:  "Create a config to use for gitlite. Config file will be placed in $HOME/.gitlite/gitlite.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := user.Current()
		if user == nil || err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		o, err := yaml.Marshal(config)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		_ = os.Mkdir(filepath.Join(user.HomeDir, ".gitlite"), 0777)
		err = os.WriteFile(filepath.Join(user.HomeDir, ".gitlite", "gitlite.yaml"), o, 0666)
		if err != nil {
			wrapFatalln("write config file", err)
			return
		}
	},
}

func init() {
	configCmd.AddCommand(configGen)
}
