package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahaara/core/cmd/sahaara/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sahaara",
		Short: "Sahaara neighborhood task exchange",
		Long:  `Sahaara is a neighborhood task exchange: post small tasks with a money, favor, or barter reward, browse what neighbors need, and accept a task by sharing your location. Everything is stored locally; there is no server.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewRegisterCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewWhoamiCommand())
	rootCmd.AddCommand(commands.NewPostCommand())
	rootCmd.AddCommand(commands.NewBrowseCommand())
	rootCmd.AddCommand(commands.NewMineCommand())
	rootCmd.AddCommand(commands.NewAcceptCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
