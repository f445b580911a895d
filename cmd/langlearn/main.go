package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YannErmes/langlearn/internal/cli"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Attach subcommands
	rootCmd.AddCommand(
		newTextCommand(flags),
		newVocabCommand(flags),
		newGrabCommand(flags),
		newExerciseCommand(flags),
		newGoalCommand(flags),
		newTwisterCommand(flags),
		newPdfCommand(flags),
		newTagCommand(flags),
		newSettingsCommand(flags),
		newDataCommand(flags),
		newModelsCommand(),
	)

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
