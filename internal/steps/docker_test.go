package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOutputHasFingerprint(t *testing.T) {
	gpgOutput := `pub:-:4096:1:8D81803C0EBFCD88:1487788586:::-:::scSC::::::23::0:
fpr:::::::::9DC858229FC7DD38854AE2D88D81803C0EBFCD88:
uid:-::::1487788586::B8A7B4B3F6D2C5E1::Docker Release (CE deb) <docker@docker.com>::::::::::0:
`

	tests := []struct {
		name     string
		output   string
		expected string
		want     bool
	}{
		{"matching fingerprint", gpgOutput, "9DC858229FC7DD38854AE2D88D81803C0EBFCD88", true},
		{"matching lowercase expected", gpgOutput, "9dc858229fc7dd38854ae2d88d81803c0ebfcd88", true},
		{"matching with spaces", gpgOutput, "9DC8 5822 9FC7 DD38 854A E2D8 8D81 803C 0EBF CD88", true},
		{"wrong fingerprint", gpgOutput, "0000000000000000000000000000000000000000", false},
		{"empty output", "", "9DC858229FC7DD38854AE2D88D81803C0EBFCD88", false},
		{"fingerprint outside fpr record", "uid:9DC858229FC7DD38854AE2D88D81803C0EBFCD88\n", "9DC858229FC7DD38854AE2D88D81803C0EBFCD88", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOutputHasFingerprint(tt.output, tt.expected))
		})
	}
}

func TestSupportedDockerArches(t *testing.T) {
	allowed := []string{"amd64", "arm64", "armhf"}
	for _, arch := range allowed {
		assert.True(t, supportedDockerArches[arch], "arch %s must be allowed", arch)
	}

	for _, arch := range []string{"i386", "riscv64", "ppc64el", "s390x", ""} {
		assert.False(t, supportedDockerArches[arch], "arch %s must be gated", arch)
	}
}
