// Package vcs runs the git sequence that turns a freshly generated workspace
// into a repository with an initial commit.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommitMessage is used when no message is configured.
const DefaultCommitMessage = "Initial commit"

// Initializer creates a repository with one commit in dir.
type Initializer interface {
	InitRepo(ctx context.Context, dir, message string) error
}

// StepError reports a failed git step with its exit status and output.
type StepError struct {
	Args     []string
	ExitCode int // -1 when the process did not start or was killed
	Output   string
	Err      error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *StepError) Unwrap() error { return e.Err }

// Git shells out to the git binary on PATH.
type Git struct {
	// Binary overrides the executable name; empty means "git".
	Binary string
}

func (g Git) binary() string {
	if g.Binary == "" {
		return "git"
	}
	return g.Binary
}

// InitRepo runs git init, git add . and git commit -m message in dir.
// It stops at the first failing step.
func (g Git) InitRepo(ctx context.Context, dir, message string) error {
	if _, err := exec.LookPath(g.binary()); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	if message == "" {
		message = DefaultCommitMessage
	}

	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", message},
	}
	for _, args := range steps {
		if err := g.run(ctx, dir, args...); err != nil {
			return err
		}
	}
	return nil
}

func (g Git) run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, g.binary(), args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &StepError{
		Args:     args,
		ExitCode: code,
		Output:   strings.TrimSpace(string(output)),
		Err:      err,
	}
}
