// Package speech provides the speech collaborators as thin wrappers around
// external programs, so the assistant itself never touches audio devices.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/halcyondev/jarvis/pkg/log"
)

// ExecRecognizer captures one utterance by running an external transcriber
// command and reading the transcript from its stdout. The command is expected
// to record from the default microphone until silence or until killed.
type ExecRecognizer struct {
	name string
	args []string
}

func NewExecRecognizer(command string) (*ExecRecognizer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no transcriber command configured")
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, fmt.Errorf("transcriber %q not found: %w", fields[0], err)
	}
	return &ExecRecognizer{name: fields[0], args: fields[1:]}, nil
}

// Listen blocks up to timeout. Silence yields ("", nil): the session loop
// treats an empty transcript as "nothing was said" and re-polls.
func (r *ExecRecognizer) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.FromCtx(ctx).Debug().
		Str("transcriber", r.name).
		Dur("timeout", timeout).
		Msg("listening")

	out, err := exec.CommandContext(lctx, r.name, r.args...).Output()
	if errors.Is(lctx.Err(), context.DeadlineExceeded) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("transcriber failed: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(string(out))), nil
}
