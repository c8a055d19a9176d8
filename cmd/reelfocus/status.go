package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"reelfocus/internal/core/timekeeper"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print today's bursts, cooldown and usage",
	Long:  `Print today's timer, session feed and usage summary from local storage without starting the tray app.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	keeper := timekeeper.New(env.days, timekeeper.Config{
		Defaults: env.preferences.Defaults,
		Logger:   env.logger,
	})
	defer keeper.Stop()

	state := keeper.Load(context.Background())
	printStatus(os.Stdout, state)
	return nil
}
