// Package system wraps the external tools the setup steps drive: command
// execution, apt/dpkg, systemd, config file backups, and live state queries.
package system

import (
	"errors"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// Runner defines an interface for running system commands.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// ExecRunner executes commands on the local system and records each
// invocation in the execution log.
type ExecRunner struct {
	log *zap.SugaredLogger
}

// NewRunner returns a Runner appropriate for the run mode: a real executor
// in normal mode, a simulate-only runner in dry-run mode.
func NewRunner(dryRun bool, log *zap.SugaredLogger, report func(cmd string)) Runner {
	if dryRun {
		return &DryRunner{report: report}
	}
	return &ExecRunner{log: log}
}

// Run executes a command and returns its combined output. Failures are
// logged with the captured exit code; the caller decides how to proceed.
func (r *ExecRunner) Run(name string, args ...string) (string, error) {
	cmdText := shellquote.Join(append([]string{name}, args...)...)
	r.log.Infow("run", "cmd", cmdText)

	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.log.Errorw("command failed", "cmd", cmdText, "exit", ExitCode(err), "output", string(output))
	}
	return string(output), err
}

// DryRunner reports the commands it would run without executing anything.
type DryRunner struct {
	report func(cmd string)
}

// Run reports the command and returns success with empty output.
func (r *DryRunner) Run(name string, args ...string) (string, error) {
	if r.report != nil {
		r.report(shellquote.Join(append([]string{name}, args...)...))
	}
	return "", nil
}

// ExitCode extracts the process exit code from a Run error, or -1 if the
// command never ran.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
