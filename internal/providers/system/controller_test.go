package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePS(t *testing.T) {
	out := "    1 systemd\n  217 sshd\n 9999 some daemon\n\ngarbage line\n"

	procs := parsePS(out)

	require.Len(t, procs, 3)
	assert.Equal(t, Process{PID: 1, Name: "systemd"}, procs[0])
	assert.Equal(t, Process{PID: 217, Name: "sshd"}, procs[1])
	assert.Equal(t, Process{PID: 9999, Name: "some daemon"}, procs[2])
}

func TestParseTasklist(t *testing.T) {
	out := `"System Idle Process","0","Services","0","8 K"
"notepad.exe","4212","Console","1","14,224 K"
`

	procs := parseTasklist(out)

	require.Len(t, procs, 2)
	assert.Equal(t, Process{PID: 0, Name: "System Idle Process"}, procs[0])
	assert.Equal(t, Process{PID: 4212, Name: "notepad.exe"}, procs[1])
}

func TestPowerCommandTable(t *testing.T) {
	tests := []struct {
		goos     string
		action   string
		wantName string
	}{
		{"linux", "shutdown", "systemctl"},
		{"linux", "lock", "loginctl"},
		{"darwin", "sleep", "pmset"},
		{"windows", "restart", "shutdown"},
	}

	for _, tt := range tests {
		c := &Controller{goos: tt.goos}
		name, _, err := c.powerCommand(tt.action)
		require.NoError(t, err, "%s/%s", tt.goos, tt.action)
		assert.Equal(t, tt.wantName, name)
	}
}

func TestPowerCommandUnsupportedAction(t *testing.T) {
	c := &Controller{goos: "darwin"}
	_, _, err := c.powerCommand("hibernate")
	assert.Error(t, err)
}

func TestKillRejectsNonPositivePID(t *testing.T) {
	c := NewController()
	assert.Error(t, c.Kill(context.Background(), 0))
	assert.Error(t, c.Kill(context.Background(), -5))
}

func TestSystemInfoFields(t *testing.T) {
	c := NewController()
	fields := c.SystemInfo(context.Background())

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.Contains(t, keys, "Hostname")
	assert.Contains(t, keys, "System")
	assert.Contains(t, keys, "CPUs")
}
