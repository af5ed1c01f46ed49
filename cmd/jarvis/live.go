package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/halcyondev/jarvis/pkg/log"
	"github.com/halcyondev/jarvis/pkg/srv"
)

var (
	liveVoiceOff bool
	liveTextOnly bool
	liveModel    string
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Start a free-form chat session",
	Long:  `Live mode skips command dispatch entirely. Every input goes to the AI provider with the conversation so far; say 'exit chat' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting jarvis live chat")

		app := NewApp(ctx, Options{
			VoiceOff: liveVoiceOff,
			TextOnly: liveTextOnly,
			Model:    liveModel,
		})

		err := app.Live.Run(ctx, app.Session)

		stop()
		srv.ShutdownServices(ctx, app.Cleanups)

		if err != nil {
			logger.Error().Err(err).Msg("live chat ended with error")
			return err
		}
		logger.Info().Msg("jarvis has been shut down gracefully")
		return nil
	},
}

func init() {
	liveCmd.Flags().BoolVar(&liveVoiceOff, "voice-off", false, "start with spoken responses disabled")
	liveCmd.Flags().BoolVar(&liveTextOnly, "text", false, "read typed input only, even with a transcriber configured")
	liveCmd.Flags().StringVarP(&liveModel, "model", "m", "", "override the configured model name")
	rootCmd.AddCommand(liveCmd)
}
