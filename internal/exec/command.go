// Package exec provides abstractions for executing external commands.
package exec

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// Err is the execution error, if any. Non-zero exits, missing
	// executables, and timeouts all surface here.
	Err error
}

// Success reports whether the command ran and exited zero.
func (r *CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failed reports whether the command failed for any reason.
func (r *CommandResult) Failed() bool {
	return !r.Success()
}

// CommandRunner executes external commands with timeout and output capture.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) *CommandResult

	// RunWithTimeout executes a command with a specific timeout.
	RunWithTimeout(timeout time.Duration, name string, args ...string) *CommandResult
}

// commandRunner implements CommandRunner.
type commandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new CommandRunner with the given default timeout.
//
//nolint:ireturn // constructor returns interface so callers can substitute mocks
func NewCommandRunner(defaultTimeout time.Duration) CommandRunner {
	return &commandRunner{
		defaultTimeout: defaultTimeout,
	}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) *CommandResult {
	if _, ok := ctx.Deadline(); !ok && r.defaultTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
	case err != nil:
		result.ExitCode = -1
		result.Err = errors.Wrapf(err, "executing %s", name)
	}

	return result
}

// RunWithTimeout executes a command with a specific timeout.
func (r *commandRunner) RunWithTimeout(timeout time.Duration, name string, args ...string) *CommandResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return r.Run(ctx, name, args...)
}
