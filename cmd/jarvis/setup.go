package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/halcyondev/jarvis/internal/config"
	"github.com/halcyondev/jarvis/internal/core"
	"github.com/halcyondev/jarvis/internal/providers/llm"
	"github.com/halcyondev/jarvis/internal/providers/speech"
	"github.com/halcyondev/jarvis/internal/providers/system"
	"github.com/halcyondev/jarvis/internal/service/command"
	"github.com/halcyondev/jarvis/internal/service/history"
	"github.com/halcyondev/jarvis/internal/service/session"
	"github.com/halcyondev/jarvis/internal/storage/sqlite"
	"github.com/halcyondev/jarvis/internal/transport/cli"
	"github.com/halcyondev/jarvis/pkg/log"
	"github.com/halcyondev/jarvis/pkg/srv"
)

// Options carries the start flags into the wiring.
type Options struct {
	VoiceOff      bool
	TextOnly      bool
	Model         string
	ListenTimeout int
}

// App is the fully wired assistant plus the services that need a clean
// shutdown after the session ends.
type App struct {
	Loop     *session.Loop
	Live     *session.LiveLoop
	Session  *core.Session
	Cleanups []srv.Service
}

func NewApp(ctx context.Context, opts Options) *App {
	logger := log.FromCtx(ctx)
	cleanups := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	speechCfg := config.NewSpeechConfig(ctx)
	if opts.ListenTimeout > 0 {
		speechCfg.ListenTimeoutSec = opts.ListenTimeout
	}

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	cleanups = append(cleanups, srv.NewCleanup(db.Close))
	transcript := sqlite.NewTranscriptRepo(db)

	// 3. AI Provider
	model, err := llm.NewProvider(ctx, appCfg.Provider, opts.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Speech collaborators
	synth, recognizer := initSpeech(ctx, speechCfg)

	// 5. OS collaborators
	opener := system.NewOpener()
	controller := system.NewController()

	// 6. Console
	console, err := cli.NewConsole(appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize console")
	}
	cleanups = append(cleanups, srv.NewCleanup(console.Close))

	// 7. Commands
	registry := command.NewRegistry()
	cmds := command.NewCommands(
		registry,
		opener,
		controller,
		transcript,
		model,
		recognizer,
		synth != nil,
		speechCfg.ListenTimeout(),
	)
	for _, cmd := range cmds {
		if err := registry.Register(cmd); err != nil {
			logger.Fatal().Err(err).Str("command", cmd.Name()).Msg("failed to register command")
		}
	}

	// 8. Session plumbing
	voiceEnabled := speechCfg.Enabled && !opts.VoiceOff && synth != nil
	sess := core.NewSession(voiceEnabled, config.IsDebug() || debug)

	historyBuilder := history.NewBuilder(transcript, appCfg.ContextWindowSize, appCfg.HistoryTokenBudget)

	// --text keeps the session on typed input even when a transcriber is
	// configured; the listen command still uses the recognizer directly.
	inputRecognizer := recognizer
	if opts.TextOnly {
		inputRecognizer = nil
	}
	input := session.NewInputChannel(console, inputRecognizer, speechCfg.ListenTimeout())
	sink := session.NewSink(console.Stdout(), synth)

	return &App{
		Loop:     session.NewLoop(registry, model, historyBuilder, transcript, input, sink),
		Live:     session.NewLiveLoop(registry, model, historyBuilder, transcript, input, sink),
		Session:  sess,
		Cleanups: cleanups,
	}
}

// initSpeech checks the local machine for a synthesizer and an optional
// transcriber command. Either may be absent; the session degrades to
// text in that case.
func initSpeech(ctx context.Context, cfg *config.SpeechConfig) (core.Synthesizer, core.Recognizer) {
	logger := log.FromCtx(ctx)

	var synth core.Synthesizer
	if es := speech.NewExecSynthesizer(cfg); es.Available() {
		synth = es
	} else {
		logger.Warn().Msg("no speech synthesizer found, voice output disabled")
	}

	var recognizer core.Recognizer
	if cfg.TranscriberCmd != "" {
		er, err := speech.NewExecRecognizer(cfg.TranscriberCmd)
		if err != nil {
			logger.Warn().Err(err).Str("command", cfg.TranscriberCmd).Msg("transcriber not usable, voice input disabled")
		} else {
			recognizer = er
		}
	}

	return synth, recognizer
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
