package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePort validates a port number (1-65535)
func ValidatePort(port string) error {
	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", port)
	}

	if p < 1 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", p)
	}

	return nil
}

// ValidateHostname validates an RFC 1123 style hostname
func ValidateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("hostname cannot be empty")
	}

	if len(hostname) > 253 {
		return fmt.Errorf("hostname too long: %s", hostname)
	}

	labels := strings.Split(hostname, ".")
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("invalid hostname (empty label): %s", hostname)
		}
		if len(label) > 63 {
			return fmt.Errorf("hostname label too long: %s", label)
		}

		for i, c := range label {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-') {
				return fmt.Errorf("invalid character in hostname: %s", hostname)
			}
			// Hyphen cannot be at start or end
			if c == '-' && (i == 0 || i == len(label)-1) {
				return fmt.Errorf("hostname label cannot start or end with hyphen: %s", label)
			}
		}
	}

	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateTimezone validates a timezone string (basic check)
func ValidateTimezone(tz string) error {
	if tz == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	// Region/City form, UTC being the lone exception
	if tz != "UTC" && !strings.Contains(tz, "/") {
		return fmt.Errorf("invalid timezone format (should be Region/City): %s", tz)
	}

	if len(tz) > 64 {
		return fmt.Errorf("timezone string too long: %s", tz)
	}

	return nil
}
