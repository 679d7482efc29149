// Package runner locates and executes helper scripts shipped beside the
// notifier binary, mirroring their exit codes.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nocoo/skill-task-notifier/pkg/logger"
)

const (
	// ScriptsDir is the scripts directory name, located beside the binary.
	ScriptsDir = "scripts"

	// ScriptExt is appended to bare script names.
	ScriptExt = ".sh"

	// ExitCodeInterrupt is returned when the script is interrupted.
	ExitCodeInterrupt = 130
)

// ErrScriptNotFound is returned when the named script does not exist.
var ErrScriptNotFound = errors.New("script not found")

// Runner executes named scripts with argument passthrough.
type Runner struct {
	scriptsDir string
	log        logger.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdio replaces the script's standard streams (for testing).
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// New creates a Runner resolving scripts under scriptsDir.
func New(scriptsDir string, log logger.Logger, opts ...Option) *Runner {
	r := &Runner{
		scriptsDir: scriptsDir,
		log:        log,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DefaultScriptsDir returns the scripts directory beside the running
// executable.
func DefaultScriptsDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve executable path")
	}

	return filepath.Join(filepath.Dir(exe), ScriptsDir), nil
}

// Resolve maps a script identifier to its path. Both "scripts/name" and
// "name" forms are accepted, with or without the .sh extension.
func (r *Runner) Resolve(name string) (string, error) {
	name = strings.TrimPrefix(name, ScriptsDir+"/")

	if !strings.HasSuffix(name, ScriptExt) {
		name += ScriptExt
	}

	path := filepath.Join(r.scriptsDir, name)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrScriptNotFound, "%s (looked for %s)", name, path)
		}

		return "", errors.Wrapf(err, "failed to stat %s", path)
	}

	return path, nil
}

// Run executes the named script with the given arguments and stdio
// passthrough, returning the script's own exit code. An interrupt while the
// script is running yields ExitCodeInterrupt.
func (r *Runner) Run(ctx context.Context, name string, args []string) (int, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return 1, err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	r.log.Debug("running script", "path", path, "args", strings.Join(args, " "))

	//nolint:gosec // script path is resolved under the trusted scripts dir
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.Canceled) {
		return ExitCodeInterrupt, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	if runErr != nil {
		return 1, errors.Wrapf(runErr, "executing %s", name)
	}

	return 0, nil
}
