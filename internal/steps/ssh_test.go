package steps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dlanger/debian-setup/internal/config"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

func testContext(t *testing.T, dryRun bool) *Context {
	t.Helper()
	dir := t.TempDir()
	log := zap.NewNop().Sugar()

	opts := config.Defaults()
	opts.DryRun = dryRun
	opts.BackupDir = filepath.Join(dir, "backups")
	opts.HostsFile = filepath.Join(dir, "hosts")
	opts.SSHDConfig = filepath.Join(dir, "sshd_config")
	opts.LocaleGenFile = filepath.Join(dir, "locale.gen")
	opts.LocaleDefault = filepath.Join(dir, "locale")
	opts.MOTDScript = filepath.Join(dir, "motd.sh")
	opts.EndlesshConfig = filepath.Join(dir, "endlessh-config")
	opts.AutoUpgradesFile = filepath.Join(dir, "20auto-upgrades")
	opts.DockerListFile = filepath.Join(dir, "docker.list")
	opts.DockerKeyring = filepath.Join(dir, "docker.gpg")

	var console bytes.Buffer
	runner := system.NewRunner(true, log, nil) // never execute real commands in tests

	return &Context{
		Opts:    opts,
		UI:      ui.NewWithWriter(&console),
		Log:     log,
		Runner:  runner,
		Backups: system.NewBackupManager(opts.BackupDir, dryRun, log),
		Apt:     system.NewApt(runner),
		Systemd: system.NewSystemd(runner),
	}
}

func TestApplySSHPortWritesPort(t *testing.T) {
	ctx := testContext(t, false)
	original := "PermitRootLogin no\nPort 22\n"
	require.NoError(t, os.WriteFile(ctx.Opts.SSHDConfig, []byte(original), 0644))

	err := applySSHPort(ctx, "2222", func() error { return nil })
	require.NoError(t, err)

	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	require.NoError(t, err)
	assert.Equal(t, "PermitRootLogin no\nPort 2222\n", string(data))
}

func TestApplySSHPortRollsBackOnValidationFailure(t *testing.T) {
	ctx := testContext(t, false)
	original := "PermitRootLogin no\nPort 22\n"
	require.NoError(t, os.WriteFile(ctx.Opts.SSHDConfig, []byte(original), 0644))

	err := applySSHPort(ctx, "2222", func() error {
		return errors.New("sshd: bad configuration")
	})
	require.Error(t, err)

	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "config must be restored byte-for-byte")
}

func TestApplySSHPortDryRunTouchesNothing(t *testing.T) {
	ctx := testContext(t, true)
	original := "Port 22\n"
	require.NoError(t, os.WriteFile(ctx.Opts.SSHDConfig, []byte(original), 0644))

	err := applySSHPort(ctx, "2222", func() error { return nil })
	require.NoError(t, err)

	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))

	_, err = os.Stat(ctx.Opts.BackupDir)
	assert.True(t, os.IsNotExist(err), "no backup directory in dry-run")
}

func TestRestartSSHSafelyConnectedSession(t *testing.T) {
	ctx := testContext(t, false)
	ctx.ConnectedViaSSH = true

	require.NoError(t, restartSSHSafely(ctx, "2222"))
	assert.True(t, ctx.SSHPortChanged)
	assert.Equal(t, "2222", ctx.NewSSHPort)
}
