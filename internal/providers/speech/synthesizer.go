package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/halcyondev/jarvis/internal/config"
)

// ExecSynthesizer speaks through the platform's native TTS command:
// `say` on macOS, `espeak-ng` on Linux, SAPI via powershell on Windows.
type ExecSynthesizer struct {
	goos  string
	voice string
	rate  int
}

func NewExecSynthesizer(cfg *config.SpeechConfig) *ExecSynthesizer {
	return &ExecSynthesizer{
		goos:  runtime.GOOS,
		voice: cfg.Voice,
		rate:  cfg.Rate,
	}
}

// Available reports whether the platform TTS binary is on PATH.
func (s *ExecSynthesizer) Available() bool {
	name, _ := s.command("")
	_, err := exec.LookPath(name)
	return err == nil
}

func (s *ExecSynthesizer) command(text string) (string, []string) {
	switch s.goos {
	case "darwin":
		args := []string{}
		if s.voice != "" {
			args = append(args, "-v", s.voice)
		}
		if s.rate > 0 {
			args = append(args, "-r", strconv.Itoa(s.rate))
		}
		return "say", append(args, text)
	case "windows":
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; "+
				"$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; "+
				"$s.Speak(%q)", text)
		return "powershell", []string{"-NoProfile", "-Command", script}
	default:
		args := []string{}
		if s.voice != "" {
			args = append(args, "-v", s.voice)
		}
		if s.rate > 0 {
			args = append(args, "-s", strconv.Itoa(s.rate))
		}
		return "espeak-ng", append(args, text)
	}
}

// Speak blocks until the utterance finishes.
func (s *ExecSynthesizer) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	name, args := s.command(text)
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
