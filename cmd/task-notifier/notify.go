package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/nocoo/skill-task-notifier/internal/channel"
	"github.com/nocoo/skill-task-notifier/internal/channel/bark"
	"github.com/nocoo/skill-task-notifier/internal/channel/desktop"
	"github.com/nocoo/skill-task-notifier/internal/channel/sound"
	internalconfig "github.com/nocoo/skill-task-notifier/internal/config"
	"github.com/nocoo/skill-task-notifier/internal/dispatcher"
	"github.com/nocoo/skill-task-notifier/internal/exec"
	"github.com/nocoo/skill-task-notifier/pkg/config"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

// subprocessTimeout bounds popup and sound subprocesses that carry no
// deadline of their own.
const subprocessTimeout = 15 * time.Second

var notifyCmd = &cobra.Command{
	Use:   "notify <level> <message>",
	Short: "Send a task notification through all enabled channels",
	Long: `Send a task notification through all enabled channels.

Levels:
  success  Task completed
  error    Task failed
  info     General notification

Channels (Bark push, desktop popup, sound) are attempted independently.
A channel failure is reported but never aborts the remaining channels or
changes the exit code.

Examples:
  task-notifier notify success "Build completed"
  task-notifier notify error "Deploy failed: timeout"`,
	Args: cobra.ExactArgs(2), //nolint:mnd // <level> <message>
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	sev, err := severity.Parse(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid level %q (expected one of: success, error, info)", args[0])
	}

	message := args[1]

	log := logger.NewConsoleLogger(verboseMode)

	path := configPath
	if path == "" {
		path, err = internalconfig.DefaultPath()
		if err != nil {
			return errors.Wrap(err, "failed to locate configuration")
		}
	}

	cfg, err := internalconfig.NewLoader().Load(path)
	if err != nil {
		return err
	}

	log.Debug("configuration loaded",
		"path", path,
		"server", cfg.Server(),
		"sound", cfg.IsSoundEnabled(),
		"popup", cfg.IsSystemNotifyEnabled(),
	)

	d := dispatcher.New(log, os.Stdout, buildChannels(cfg, log)...)

	results := d.Dispatch(context.Background(), sev, message)

	fmt.Println()
	fmt.Println(dispatcher.Summary(results))

	return nil
}

// buildChannels assembles the channel list honoring the config toggles.
// Bark is always attempted; its Send reports the missing-key case itself.
func buildChannels(cfg *config.Config, log logger.Logger) []channel.Channel {
	runner := exec.NewCommandRunner(subprocessTimeout)

	channels := []channel.Channel{bark.NewSender(cfg, log)}

	if cfg.IsSystemNotifyEnabled() {
		channels = append(channels, desktop.New(runner, log))
	}

	if cfg.IsSoundEnabled() {
		channels = append(channels, sound.New(runner, exec.NewToolChecker(), log))
	}

	return channels
}
