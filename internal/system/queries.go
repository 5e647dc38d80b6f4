package system

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Live system state reads are centralized here. They are side-effect free
// and always hit the real system, so the final summary reflects what
// actually took effect rather than remembered variables.

// RequireRoot fails unless the process runs with elevated privileges
func RequireRoot() error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("debian-setup must be run as root — try: sudo debian-setup")
	}
	return nil
}

// CurrentHostname returns the system hostname
func CurrentHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// CurrentTimezone returns the configured timezone
func CurrentTimezone() string {
	output, err := exec.Command("timedatectl", "show", "--property=Timezone", "--value").Output()
	if err == nil {
		if tz := strings.TrimSpace(string(output)); tz != "" {
			return tz
		}
	}

	// Fallback for systems where timedatectl is unavailable
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}
	return "unknown"
}

// ListTimezones returns all timezones known to the system
func ListTimezones() ([]string, error) {
	output, err := exec.Command("timedatectl", "list-timezones").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list timezones: %w", err)
	}
	return nonEmptyLines(string(output)), nil
}

// SupportedLocales reads the locale enumeration shipped with the locales
// package, usually /usr/share/i18n/SUPPORTED.
func SupportedLocales(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read locale list %s: %w", path, err)
	}
	defer f.Close()

	var locales []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		locales = append(locales, line)
	}
	return locales, scanner.Err()
}

// CurrentLocale returns the default LANG from the locale default file
func CurrentLocale(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(string(data), "\n") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(line), "LANG="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return "unknown"
}

// ConnectedViaSSH reports whether this process runs inside an SSH session.
// Determined once per run from the session environment markers.
func ConnectedViaSSH() bool {
	for _, marker := range []string{"SSH_CLIENT", "SSH_TTY", "SSH_CONNECTION"} {
		if os.Getenv(marker) != "" {
			return true
		}
	}
	return false
}

// DebianArch returns the dpkg architecture identifier (amd64, arm64, ...)
func DebianArch() (string, error) {
	output, err := exec.Command("dpkg", "--print-architecture").Output()
	if err != nil {
		return "", fmt.Errorf("failed to detect architecture: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// DebianCodename returns the release codename (bookworm, trixie, ...)
func DebianCodename() (string, error) {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "", fmt.Errorf("cannot read /etc/os-release: %w", err)
	}
	codename := OSReleaseField(string(data), "VERSION_CODENAME")
	if codename == "" {
		return "", fmt.Errorf("no VERSION_CODENAME in /etc/os-release")
	}
	return codename, nil
}

// OSReleaseField extracts a field from os-release content
func OSReleaseField(content, key string) string {
	for _, line := range strings.Split(content, "\n") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(line), key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

// PortListening checks the socket table for a TCP listener on the port
func PortListening(port string) bool {
	output, err := exec.Command("ss", "-tln").Output()
	if err != nil {
		return false
	}
	return SocketTableHasPort(string(output), port)
}

// SocketTableHasPort scans ss -tln output for a listener on the given port
func SocketTableHasPort(output, port string) bool {
	for _, line := range nonEmptyLines(output) {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		// Local address column, e.g. 0.0.0.0:2222 or [::]:2222
		if strings.HasSuffix(fields[3], ":"+port) {
			return true
		}
	}
	return false
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
