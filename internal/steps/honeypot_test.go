package steps

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlanger/debian-setup/internal/system"
)

// recordingContext wires the test context's runner to capture every command
// it is asked to issue.
func recordingContext(t *testing.T) (*Context, *[]string) {
	t.Helper()
	ctx := testContext(t, true)

	var commands []string
	runner := system.NewRunner(true, ctx.Log, func(cmd string) {
		commands = append(commands, cmd)
	})
	ctx.Runner = runner
	ctx.Apt = system.NewApt(runner)
	ctx.Systemd = system.NewSystemd(runner)
	return ctx, &commands
}

func TestStartHoneypotServiceStartsImmediately(t *testing.T) {
	ctx, commands := recordingContext(t)

	require.NoError(t, startHoneypotService(ctx))
	require.Len(t, *commands, 1)
	assert.Equal(t, "systemctl enable --now endlessh", (*commands)[0])
}

func TestStartHoneypotServiceDefersWhenPortChangeStaged(t *testing.T) {
	ctx, commands := recordingContext(t)
	ctx.SSHPortChanged = true
	ctx.NewSSHPort = "2222"

	require.NoError(t, startHoneypotService(ctx))
	require.Len(t, *commands, 1)
	assert.Equal(t, "systemctl enable endlessh", (*commands)[0],
		"endlessh cannot bind port 22 while sshd still holds it")
}

func TestSSHPortIs22(t *testing.T) {
	t.Run("staged change counts as moved", func(t *testing.T) {
		ctx := testContext(t, true)
		ctx.SSHPortChanged = true
		ctx.NewSSHPort = "2222"
		assert.False(t, sshPortIs22(ctx))
	})

	t.Run("unreadable config treated as port 22", func(t *testing.T) {
		ctx := testContext(t, true)
		assert.True(t, sshPortIs22(ctx))
	})

	t.Run("explicit nonstandard port", func(t *testing.T) {
		ctx := testContext(t, true)
		require.NoError(t, os.WriteFile(ctx.Opts.SSHDConfig, []byte("Port 2222\n"), 0644))
		assert.False(t, sshPortIs22(ctx))
	})

	t.Run("explicit port 22", func(t *testing.T) {
		ctx := testContext(t, true)
		require.NoError(t, os.WriteFile(ctx.Opts.SSHDConfig, []byte("Port 22\n"), 0644))
		assert.True(t, sshPortIs22(ctx))
	})
}
