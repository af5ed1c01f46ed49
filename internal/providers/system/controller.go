// Package system wraps the OS facilities behind the registry's handlers:
// power management, process listing and termination, host information, and
// opening applications and URLs.
package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/halcyondev/jarvis/pkg/log"
)

// Process is one entry of the process table.
type Process struct {
	PID  int
	Name string
}

// InfoField is one line of host information, ordered for display.
type InfoField struct {
	Key   string
	Value string
}

type Controller struct {
	goos string
}

func NewController() *Controller {
	return &Controller{goos: runtime.GOOS}
}

func (c *Controller) powerCommand(action string) (string, []string, error) {
	type cmd struct {
		name string
		args []string
	}
	table := map[string]map[string]cmd{
		"linux": {
			"shutdown":  {"systemctl", []string{"poweroff"}},
			"restart":   {"systemctl", []string{"reboot"}},
			"sleep":     {"systemctl", []string{"suspend"}},
			"hibernate": {"systemctl", []string{"hibernate"}},
			"lock":      {"loginctl", []string{"lock-session"}},
			"logout":    {"loginctl", []string{"terminate-user", os.Getenv("USER")}},
		},
		"darwin": {
			"shutdown": {"shutdown", []string{"-h", "now"}},
			"restart":  {"shutdown", []string{"-r", "now"}},
			"sleep":    {"pmset", []string{"sleepnow"}},
			"lock":     {"pmset", []string{"displaysleepnow"}},
			"logout":   {"osascript", []string{"-e", `tell application "System Events" to log out`}},
		},
		"windows": {
			"shutdown":  {"shutdown", []string{"/s", "/t", "0"}},
			"restart":   {"shutdown", []string{"/r", "/t", "0"}},
			"sleep":     {"rundll32", []string{"powrprof.dll,SetSuspendState", "0,1,0"}},
			"hibernate": {"shutdown", []string{"/h"}},
			"lock":      {"rundll32", []string{"user32.dll,LockWorkStation"}},
			"logout":    {"shutdown", []string{"/l"}},
		},
	}

	platform, ok := table[c.goos]
	if !ok {
		platform = table["linux"]
	}
	entry, ok := platform[action]
	if !ok {
		return "", nil, fmt.Errorf("action %q is not supported on %s", action, c.goos)
	}
	return entry.name, entry.args, nil
}

// Power runs the platform command for one of shutdown, restart, sleep, lock,
// hibernate, logout.
func (c *Controller) Power(ctx context.Context, action string) error {
	name, args, err := c.powerCommand(action)
	if err != nil {
		return err
	}

	log.FromCtx(ctx).Info().
		Str("action", action).
		Str("command", name).
		Msg("executing power action")

	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Processes returns the current process table.
func (c *Controller) Processes(ctx context.Context) ([]Process, error) {
	if c.goos == "windows" {
		out, err := exec.CommandContext(ctx, "tasklist", "/fo", "csv", "/nh").Output()
		if err != nil {
			return nil, fmt.Errorf("tasklist failed: %w", err)
		}
		return parseTasklist(string(out)), nil
	}

	out, err := exec.CommandContext(ctx, "ps", "-eo", "pid=,comm=").Output()
	if err != nil {
		return nil, fmt.Errorf("ps failed: %w", err)
	}
	return parsePS(string(out)), nil
}

func parsePS(out string) []Process {
	var procs []Process
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		procs = append(procs, Process{PID: pid, Name: strings.Join(fields[1:], " ")})
	}
	return procs
}

func parseTasklist(out string) []Process {
	var procs []Process
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// "name","pid","session",...
		parts := strings.Split(line, `","`)
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimPrefix(parts[0], `"`)
		pid, err := strconv.Atoi(strings.Trim(parts[1], `"`))
		if err != nil {
			continue
		}
		procs = append(procs, Process{PID: pid, Name: name})
	}
	return procs
}

// Kill terminates a process by PID.
func (c *Controller) Kill(ctx context.Context, pid int) error {
	if pid <= 0 {
		return fmt.Errorf("pid must be a positive number")
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}

	log.FromCtx(ctx).Info().Int("pid", pid).Msg("process terminated")
	return nil
}

// SystemInfo returns host information in display order.
func (c *Controller) SystemInfo(ctx context.Context) []InfoField {
	hostname, _ := os.Hostname()
	return []InfoField{
		{"Hostname", hostname},
		{"System", c.goos},
		{"Machine", runtime.GOARCH},
		{"CPUs", strconv.Itoa(runtime.NumCPU())},
		{"Go Version", runtime.Version()},
	}
}
