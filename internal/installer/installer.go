// Package installer shells out to uv to add the logfire package with the
// selected extras, and to the logfire CLI to persist a project selection.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrUVNotFound is returned when uv is not installed or not on PATH.
var ErrUVNotFound = errors.New("uv is not installed or not available in PATH")

// PackageName is the distribution installed by this tool.
const PackageName = "logfire"

// Result captures a finished subprocess invocation. Success is determined
// purely by ExitCode; output is surfaced for diagnosis, never parsed.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner abstracts subprocess execution for testability.
type CommandRunner interface {
	// Run executes a command in dir and returns its captured output and
	// exit code. A non-zero exit is reported via Result, not error; error
	// is reserved for failures to start the process at all.
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// NewCommandRunner returns the default os/exec-backed runner.
func NewCommandRunner() CommandRunner {
	return execRunner{}
}

// Installer drives uv and logfire CLI invocations.
type Installer struct {
	runner CommandRunner
}

// New creates an Installer using the default command runner.
func New() *Installer {
	return NewWithRunner(NewCommandRunner())
}

// NewWithRunner creates an Installer with a custom runner.
func NewWithRunner(runner CommandRunner) *Installer {
	return &Installer{runner: runner}
}

// PackageSpec builds the uv package specifier for the selected extras,
// e.g. "logfire[fastapi,redis]" or a bare "logfire".
func PackageSpec(extras []string) string {
	if len(extras) == 0 {
		return PackageName
	}
	return PackageName + "[" + strings.Join(extras, ",") + "]"
}

// CheckUV verifies uv is installed by invoking its version command.
// A missing binary or non-zero exit yields ErrUVNotFound.
func (i *Installer) CheckUV(ctx context.Context) error {
	result, err := i.runner.Run(ctx, "", "uv", "--version")
	if err != nil {
		return fmt.Errorf("%w; %s", ErrUVNotFound, err)
	}
	if !result.Success() {
		return ErrUVNotFound
	}

	slog.Debug("uv available", "version", strings.TrimSpace(result.Stdout))

	return nil
}

// Install runs `uv add` for the package spec in the project directory.
// The returned Result carries the subprocess output and exit code; err is
// non-nil only when the process could not be started.
func (i *Installer) Install(ctx context.Context, projectDir string, extras []string) (Result, error) {
	spec := PackageSpec(extras)

	slog.Info("installing package", "spec", spec, "project_dir", projectDir)

	result, err := i.runner.Run(ctx, projectDir, "uv", "add", spec)
	if err != nil {
		return result, fmt.Errorf("failed to run uv add; %w", err)
	}

	return result, nil
}

// UseProject runs `logfire projects use <project>` in the project
// directory so the logfire CLI writes .logfire/logfire_credentials.json.
func (i *Installer) UseProject(ctx context.Context, projectDir, projectName string) (Result, error) {
	result, err := i.runner.Run(ctx, projectDir, "logfire", "projects", "use", projectName)
	if err != nil {
		return result, fmt.Errorf("failed to run logfire projects use; %w", err)
	}

	return result, nil
}
