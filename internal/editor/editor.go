// Package editor implements the targeted, idempotent edits applied to system
// configuration files. The transformations are pure functions over file
// content; Apply is the thin adapter that runs one against the filesystem.
package editor

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Transform rewrites file content
type Transform func(content string) string

// Apply reads path, runs transform over its content, and writes the result
// back if it changed. Missing files are treated as empty.
func Apply(path string, transform Transform) error {
	var content string
	data, err := os.ReadFile(path)
	if err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	updated := transform(content)
	if updated == content {
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// loopbackAlias is the marker for the Debian loopback alias line in /etc/hosts
const loopbackAlias = "127.0.1.1"

// SetHostsAlias replaces the loopback alias line with the given hostname, or
// appends one if no alias line exists. Re-running with the same hostname
// yields identical content.
func SetHostsAlias(content, hostname string) string {
	entry := loopbackAlias + "\t" + hostname
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		// Whole-field match so 127.0.1.10 and friends stay untouched.
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == loopbackAlias {
			lines[i] = entry
			return strings.Join(lines, "\n")
		}
	}

	out := content
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + entry + "\n"
}

// EnableLocale ensures the locale line is active in locale.gen content: an
// already active line is left alone, a commented line is uncommented, and a
// wholly absent line is appended.
func EnableLocale(content, locale string) string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == locale {
			return content
		}
		uncommented := strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
		if strings.HasPrefix(trimmed, "#") && uncommented == locale {
			lines[i] = locale
			return strings.Join(lines, "\n")
		}
	}

	out := content
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + locale + "\n"
}

// SetOption sets a "Key value" style option in sshd_config-like content.
// An active line is replaced, a commented line is uncommented and replaced,
// and an absent option is appended.
func SetOption(content, key, value string) string {
	replacement := key + " " + value

	active := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `\s+.*$`)
	if active.MatchString(content) {
		return active.ReplaceAllString(content, replacement)
	}

	commented := regexp.MustCompile(`(?m)^#\s*` + regexp.QuoteMeta(key) + `\s+.*$`)
	if loc := commented.FindStringIndex(content); loc != nil {
		// Uncomment only the first commented occurrence
		return content[:loc[0]] + replacement + content[loc[1]:]
	}

	out := content
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + replacement + "\n"
}

// GetOption returns the value of an active "Key value" option, or "" if the
// option is absent or commented out.
func GetOption(content, key string) string {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `\s+(.+)$`)
	matches := re.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}
