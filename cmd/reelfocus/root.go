package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
	logLevel   string
)

// rootCmd runs the tray application when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "reelfocus",
	Short: "Reel Focus - short phone bursts with cooldowns in between",
	Long: `Reel Focus splits the day's phone time into a fixed number of short
bursts. Each burst is a countdown; finishing one logs it and locks the next
behind a cooldown. Progress is kept per day in local storage.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: <user config dir>/ReelFocus/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
