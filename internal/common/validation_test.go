package common

import "testing"

func TestValidatePort(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port", "2222", false},
		{"valid port - min", "1", false},
		{"valid port - max", "65535", false},
		{"invalid - zero", "0", true},
		{"invalid - too high", "65536", true},
		{"invalid - way too high", "99999", true},
		{"invalid - negative", "-1", true},
		{"invalid - not numeric", "abc", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePort(tt.port)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePort() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHostname(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		wantErr  bool
	}{
		{"valid simple", "webserver", false},
		{"valid with hyphen", "web-01", false},
		{"valid fqdn", "web01.example.com", false},
		{"invalid - empty", "", true},
		{"invalid - starts with hyphen", "-web", true},
		{"invalid - ends with hyphen", "web-", true},
		{"invalid - double dot", "web..example", true},
		{"invalid - underscore", "web_server", true},
		{"invalid - space", "web server", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHostname(tt.hostname)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHostname() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "something", false},
		{"invalid - empty", "", true},
		{"invalid - whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{"valid timezone", "America/Chicago", false},
		{"valid timezone - Europe", "Europe/Berlin", false},
		{"valid UTC", "UTC", false},
		{"invalid - no slash", "CET", true},
		{"invalid - empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.tz)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimezone() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
