package steps

import (
	"fmt"
	"strings"

	"github.com/dlanger/debian-setup/internal/system"
)

// dockerKeyFingerprint is the fingerprint of Docker's Debian repository
// signing key. A downloaded key that does not carry it is rejected.
const dockerKeyFingerprint = "9DC858229FC7DD38854AE2D88D81803C0EBFCD88"

const dockerKeyURL = "https://download.docker.com/linux/debian/gpg"

// supportedDockerArches is the fixed allow-list of architectures Docker's
// Debian repository serves.
var supportedDockerArches = map[string]bool{
	"amd64": true,
	"arm64": true,
	"armhf": true,
}

var dockerPackages = []string{
	"docker-ce",
	"docker-ce-cli",
	"containerd.io",
	"docker-buildx-plugin",
	"docker-compose-plugin",
}

// RunDocker installs the Docker engine from Docker's own repository. The
// step is gated on a supported architecture and on the signing key matching
// the expected fingerprint.
func RunDocker(ctx *Context) error {
	ctx.UI.Step("Container Runtime (Docker)")

	if system.CommandExists("docker") {
		ctx.UI.Info("Docker is already installed")
		return nil
	}

	arch, err := system.DebianArch()
	if err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}
	if !supportedDockerArches[arch] {
		ctx.UI.Warningf("Architecture %s is not supported by the Docker repository; skipping", arch)
		ctx.Log.Infow("docker step skipped", "reason", "unsupported architecture", "arch", arch)
		return nil
	}

	install, err := ctx.UI.PromptYesNo("Install the Docker engine?", false)
	if err != nil {
		return err
	}
	if !install {
		ctx.UI.Info("Skipping Docker")
		return nil
	}

	if err := ctx.Apt.Install("ca-certificates", "curl", "gnupg"); err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	keyFile := "/tmp/docker-archive-key.asc"
	if _, err := ctx.Runner.Run("curl", "-fsSL", dockerKeyURL, "-o", keyFile); err != nil {
		return ctx.fail(fmt.Errorf("docker: failed to download signing key (exit %d)", system.ExitCode(err)))
	}

	if err := verifyDockerKey(ctx, keyFile); err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	if _, err := ctx.Runner.Run("gpg", "--dearmor", "--yes", "-o", ctx.Opts.DockerKeyring, keyFile); err != nil {
		return ctx.fail(fmt.Errorf("docker: failed to import signing key (exit %d)", system.ExitCode(err)))
	}

	codename, err := system.DebianCodename()
	if err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	repoLine := fmt.Sprintf("deb [arch=%s signed-by=%s] https://download.docker.com/linux/debian %s stable\n",
		arch, ctx.Opts.DockerKeyring, codename)
	if err := ctx.writeConfigFile(ctx.Opts.DockerListFile, "docker apt repository", repoLine, 0644); err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	// New source list: the shared index refresh from earlier steps is stale
	ctx.Apt.Invalidate()
	if err := ctx.Apt.Install(dockerPackages...); err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	if err := ctx.Systemd.EnableNow("docker"); err != nil {
		return ctx.fail(fmt.Errorf("docker: %w", err))
	}

	ctx.UI.Success("Docker engine installed and running")
	ctx.Log.Infow("docker installed", "arch", arch, "codename", codename)
	return nil
}

// verifyDockerKey checks the downloaded key's fingerprint against the
// expected constant. A mismatch aborts the step before the key is imported.
func verifyDockerKey(ctx *Context, keyFile string) error {
	output, err := ctx.Runner.Run("gpg", "--show-keys", "--with-colons", "--with-fingerprint", keyFile)
	if err != nil {
		return fmt.Errorf("failed to inspect signing key (exit %d)", system.ExitCode(err))
	}

	if ctx.Opts.DryRun {
		ctx.UI.DryRun("would verify signing key fingerprint " + dockerKeyFingerprint)
		return nil
	}

	if !KeyOutputHasFingerprint(output, dockerKeyFingerprint) {
		return fmt.Errorf("signing key fingerprint mismatch: expected %s", dockerKeyFingerprint)
	}

	ctx.UI.Success("Docker signing key fingerprint verified")
	ctx.Log.Infow("docker key verified", "fingerprint", dockerKeyFingerprint)
	return nil
}

// KeyOutputHasFingerprint scans gpg --with-colons output for a fingerprint
// record matching the expected value, ignoring spacing and case.
func KeyOutputHasFingerprint(output, expected string) bool {
	want := strings.ToUpper(strings.ReplaceAll(expected, " ", ""))
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) > 9 && fields[0] == "fpr" {
			if strings.ToUpper(fields[9]) == want {
				return true
			}
		}
	}
	return false
}
