package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalcolor "github.com/nocoo/skill-task-notifier/internal/color"
	internalconfig "github.com/nocoo/skill-task-notifier/internal/config"
	"github.com/nocoo/skill-task-notifier/internal/doctor"
	"github.com/nocoo/skill-task-notifier/internal/doctor/reporters"
	"github.com/nocoo/skill-task-notifier/internal/exec"
)

var tableFlag bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose task-notifier setup and configuration",
	Long: `Diagnose task-notifier setup and configuration issues.

Checks:
- Configuration file presence and validity
- Severity metadata completeness
- Bark push key and server settings
- Desktop popup tool availability for this OS
- Sound player and sound file availability for this OS

Examples:
  task-notifier doctor            # Run all checks
  task-notifier doctor --verbose  # Run with detailed output
  task-notifier doctor --table    # Render results as a table`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(
		&tableFlag,
		"table",
		false,
		"Render results as a table",
	)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	path := configPath

	if path == "" {
		var err error

		path, err = internalconfig.DefaultPath()
		if err != nil {
			return errors.Wrap(err, "failed to locate configuration")
		}
	}

	cfg, loadErr := internalconfig.NewLoader().Load(path)

	tools := exec.NewToolChecker()

	results := doctor.Run(
		context.Background(),
		doctor.NewConfigChecker(path, loadErr),
		doctor.NewSeverityTableChecker(),
		doctor.NewPushKeyChecker(cfg),
		doctor.NewDesktopToolChecker(runtime.GOOS, tools),
		doctor.NewSoundToolChecker(runtime.GOOS, tools),
	)

	report(results)

	if doctor.HasErrors(results) {
		os.Exit(1)
	}

	return nil
}

// report renders the results either as a colored table or as the plain
// checklist, depending on --table.
func report(results []doctor.CheckResult) {
	if tableFlag {
		theme := internalcolor.NewTheme(internalcolor.Profile(noColorFlag))

		fmt.Println(reporters.RenderTable(results, verboseMode, theme))
		fmt.Println()
		fmt.Println(reporters.RenderSummary(results, theme))

		return
	}

	reporters.NewSimpleReporter(os.Stdout).Report(results, verboseMode)
}
