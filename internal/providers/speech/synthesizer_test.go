package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizerCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		voice    string
		rate     int
		wantName string
		wantArgs []string
	}{
		{
			name:     "darwin default voice",
			goos:     "darwin",
			rate:     180,
			wantName: "say",
			wantArgs: []string{"-r", "180", "hello"},
		},
		{
			name:     "darwin named voice",
			goos:     "darwin",
			voice:    "Samantha",
			rate:     180,
			wantName: "say",
			wantArgs: []string{"-v", "Samantha", "-r", "180", "hello"},
		},
		{
			name:     "linux",
			goos:     "linux",
			rate:     180,
			wantName: "espeak-ng",
			wantArgs: []string{"-s", "180", "hello"},
		},
		{
			name:     "zero rate omitted",
			goos:     "linux",
			wantName: "espeak-ng",
			wantArgs: []string{"hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ExecSynthesizer{goos: tt.goos, voice: tt.voice, rate: tt.rate}
			name, args := s.command("hello")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSynthesizerWindowsEscapesText(t *testing.T) {
	s := &ExecSynthesizer{goos: "windows"}
	name, args := s.command(`say "this"`)
	assert.Equal(t, "powershell", name)
	assert.Contains(t, args[len(args)-1], `\"this\"`)
}
