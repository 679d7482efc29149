// Package main provides the CLI entry point for task-notifier.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	verboseMode bool
	noColorFlag bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "task-notifier",
	Short: "Task completion notification dispatcher",
	Long: `Task completion notification dispatcher - pushes a remote Bark notification,
shows a desktop popup, and plays a completion sound when a long-running task
finishes.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: config.json beside the executable)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verboseMode,
		"verbose",
		false,
		"Enable debug logging",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}
