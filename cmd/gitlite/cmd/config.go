package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oneconcern/gitlite/pkg/dlogger"
	"go.uber.org/zap"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Verbosity for all commands
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	if config.LogLevel == "" {
		config.LogLevel = dlogger.LogLevelInfo
	}
	return &config, nil
}

func (c *CLIConfig) logger() *zap.Logger {
	l, err := dlogger.GetLogger(c.LogLevel)
	if err != nil {
		wrapFatalln("invalid log level "+c.LogLevel, err)
		return zap.NewNop()
	}
	return l
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the CLI config",
	Long: `Commands to manage the gitlite CLI config.

This config holds the flags that do not change across runs, such as the
log level. It is distinct from the per-repository configuration kept
under the metadata directory.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
