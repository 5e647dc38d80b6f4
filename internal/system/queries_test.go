package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSocketTableHasPort(t *testing.T) {
	ssOutput := `State   Recv-Q  Send-Q  Local Address:Port  Peer Address:Port
LISTEN  0       128     0.0.0.0:2222        0.0.0.0:*
LISTEN  0       128     [::]:2222           [::]:*
LISTEN  0       4096    127.0.0.53%lo:53    0.0.0.0:*
`

	tests := []struct {
		name string
		port string
		want bool
	}{
		{"listening port", "2222", true},
		{"dns on loopback", "53", true},
		{"absent port", "22", false},
		{"partial match is not a match", "222", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SocketTableHasPort(ssOutput, tt.port); got != tt.want {
				t.Errorf("SocketTableHasPort(%q) = %v, want %v", tt.port, got, tt.want)
			}
		})
	}
}

func TestSupportedLocales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SUPPORTED")
	content := `# comment
en_US.UTF-8 UTF-8

en_US ISO-8859-1
de_DE.UTF-8 UTF-8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	locales, err := SupportedLocales(path)
	if err != nil {
		t.Fatalf("SupportedLocales() error = %v", err)
	}

	want := []string{"en_US.UTF-8 UTF-8", "en_US ISO-8859-1", "de_DE.UTF-8 UTF-8"}
	if len(locales) != len(want) {
		t.Fatalf("SupportedLocales() = %v, want %v", locales, want)
	}
	for i := range want {
		if locales[i] != want[i] {
			t.Errorf("SupportedLocales()[%d] = %q, want %q", i, locales[i], want[i])
		}
	}
}

func TestCurrentLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale")
	if err := os.WriteFile(path, []byte("LANG=en_US.UTF-8\nLC_ALL=en_US.UTF-8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := CurrentLocale(path); got != "en_US.UTF-8" {
		t.Errorf("CurrentLocale() = %q, want en_US.UTF-8", got)
	}

	if got := CurrentLocale(filepath.Join(t.TempDir(), "missing")); got != "unknown" {
		t.Errorf("CurrentLocale(missing) = %q, want unknown", got)
	}
}

func TestOSReleaseField(t *testing.T) {
	content := `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
ID=debian
VERSION_CODENAME=bookworm
`

	tests := []struct {
		key  string
		want string
	}{
		{"VERSION_CODENAME", "bookworm"},
		{"ID", "debian"},
		{"PRETTY_NAME", "Debian GNU/Linux 12 (bookworm)"},
		{"MISSING", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := OSReleaseField(content, tt.key); got != tt.want {
				t.Errorf("OSReleaseField(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConnectedViaSSH(t *testing.T) {
	for _, marker := range []string{"SSH_CLIENT", "SSH_TTY", "SSH_CONNECTION"} {
		t.Setenv(marker, "")
	}
	if ConnectedViaSSH() {
		t.Error("ConnectedViaSSH() = true with no session markers")
	}

	t.Setenv("SSH_CONNECTION", "10.0.0.5 49812 10.0.0.1 22")
	if !ConnectedViaSSH() {
		t.Error("ConnectedViaSSH() = false with SSH_CONNECTION set")
	}
}
