package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/halcyondev/jarvis/pkg/log"
)

type SpeechConfig struct {
	// Whether responses are spoken by default. The session can flip this
	// at runtime with the voice command.
	Enabled bool `env:"JARVIS_VOICE_ENABLED" envDefault:"false"`
	// Voice name passed to the synthesizer; empty uses the platform default.
	Voice string `env:"JARVIS_VOICE"`
	// Words per minute.
	Rate int `env:"JARVIS_SPEECH_RATE" envDefault:"180"`
	// Seconds of silence before a listen attempt yields nothing.
	ListenTimeoutSec int `env:"JARVIS_LISTEN_TIMEOUT" envDefault:"5"`
	// External command producing a transcript on stdout, e.g. "hear" or a
	// whisper front end. Empty disables the voice input channel.
	TranscriberCmd string `env:"JARVIS_TRANSCRIBER"`
}

func NewSpeechConfig(ctx context.Context) *SpeechConfig {
	c := &SpeechConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Speech config")
	}
	return c
}

func (c SpeechConfig) ListenTimeout() time.Duration {
	return time.Duration(c.ListenTimeoutSec) * time.Second
}
