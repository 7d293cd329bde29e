// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oneconcern/gitlite/pkg/dlogger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitlite",
	Short: "gitlite is a content-addressable version-control store",
	Long: `gitlite manages a repository of content-addressed objects: blobs, trees,
commits and tags, kept under a metadata directory at the root of a working tree.

It speaks the same on-disk formats as git for everything it implements.
`,
}

var config *CLIConfig

// used to patch over calls to os.Exit() during test
var logFatalln = log.Fatalln
var osExit = os.Exit

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("loglevel", dlogger.LogLevelInfo,
		"log level (debug, info, none)")
	_ = viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", dlogger.LogLevelInfo)
	if os.Getenv("GITLITE_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("GITLITE_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.gitlite")
		viper.SetConfigName("gitlite")
	}
	viper.SetEnvPrefix("gitlite")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	_ = viper.ReadInConfig()

	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
}
