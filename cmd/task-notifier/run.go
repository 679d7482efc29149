package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/nocoo/skill-task-notifier/internal/runner"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run <script> [args...]",
	Short: "Run a task script with exit code passthrough",
	Long: `Run a named script from the scripts directory beside the executable.

Standard streams and arguments are passed through unchanged and the script's
exit code is mirrored. An interrupt (Ctrl-C) terminates the script and exits
with code 130.

Examples:
  task-notifier run deploy.sh
  task-notifier run backup.sh --target /srv/data`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	log := logger.NewConsoleLogger(verboseMode)

	scriptsDir, err := runner.DefaultScriptsDir()
	if err != nil {
		return errors.Wrap(err, "failed to locate scripts directory")
	}

	r := runner.New(scriptsDir, log)

	code, err := r.Run(context.Background(), args[0], args[1:])
	if err != nil {
		log.Error("script run failed", "script", args[0], "error", err)
	}

	if code != 0 {
		os.Exit(code)
	}

	return nil
}
