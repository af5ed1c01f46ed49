package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/halcyondev/jarvis/internal/config"
)

// Console is the terminal front end. It satisfies the session line
// reader and exposes its stdout for the response sink so prompt
// redrawing stays consistent.
type Console struct {
	rl *readline.Instance
}

func NewConsole(cfg *config.AppConfig) (*Console, error) {
	runtimePath := cfg.GetRuntimePath()
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Console{rl: rl}, nil
}

// ReadLine blocks for the next line. Ctrl+C on an empty line and
// Ctrl+D both surface as io.EOF so the session loop ends cleanly.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return "", io.EOF
				}
				continue
			}
			if err == io.EOF {
				return "", io.EOF
			}
			return "", err
		}
		return line, nil
	}
}

// Stdout is where responses should be written.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

func (c *Console) Close() error {
	if c.rl != nil {
		return c.rl.Close()
	}
	return nil
}
