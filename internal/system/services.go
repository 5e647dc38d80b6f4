package system

import (
	"fmt"
	"os/exec"
)

// Systemd drives service state changes through a Runner; status queries go
// straight to systemctl since they never mutate anything.
type Systemd struct {
	runner Runner
}

// NewSystemd creates a Systemd manager using the given runner
func NewSystemd(runner Runner) *Systemd {
	return &Systemd{runner: runner}
}

// IsServiceActive checks if a service is currently active
func IsServiceActive(serviceName string) bool {
	return exec.Command("systemctl", "is-active", "--quiet", serviceName).Run() == nil
}

// IsServiceEnabled checks if a service is enabled to start on boot
func IsServiceEnabled(serviceName string) bool {
	return exec.Command("systemctl", "is-enabled", "--quiet", serviceName).Run() == nil
}

// Enable enables a service to start on boot without starting it now
func (s *Systemd) Enable(serviceName string) error {
	if output, err := s.runner.Run("systemctl", "enable", serviceName); err != nil {
		return fmt.Errorf("failed to enable service %s (exit %d): %s", serviceName, ExitCode(err), output)
	}
	return nil
}

// EnableNow enables a service and starts it immediately
func (s *Systemd) EnableNow(serviceName string) error {
	if output, err := s.runner.Run("systemctl", "enable", "--now", serviceName); err != nil {
		return fmt.Errorf("failed to enable service %s (exit %d): %s", serviceName, ExitCode(err), output)
	}
	return nil
}

// Restart restarts a service
func (s *Systemd) Restart(serviceName string) error {
	if output, err := s.runner.Run("systemctl", "restart", serviceName); err != nil {
		return fmt.Errorf("failed to restart service %s (exit %d): %s", serviceName, ExitCode(err), output)
	}
	return nil
}
