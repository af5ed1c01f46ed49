package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/halcyondev/jarvis/pkg/log"
	"github.com/halcyondev/jarvis/pkg/srv"
)

var (
	startVoiceOff bool
	startTextOnly bool
	startModel    string
	startTimeout  int
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive assistant session",
	Long:  `Starts the command session. Typed or spoken input is dispatched to built-in commands; everything else is answered by the configured AI provider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting jarvis")

		app := NewApp(ctx, Options{
			VoiceOff:      startVoiceOff,
			TextOnly:      startTextOnly,
			Model:         startModel,
			ListenTimeout: startTimeout,
		})

		// The session runs in the foreground; cleanups wait for it.
		err := app.Loop.Run(ctx, app.Session)

		stop()
		srv.ShutdownServices(ctx, app.Cleanups)

		if err != nil {
			logger.Error().Err(err).Msg("session ended with error")
			return err
		}
		logger.Info().Msg("jarvis has been shut down gracefully")
		return nil
	},
}

func init() {
	startCmd.Flags().BoolVar(&startVoiceOff, "voice-off", false, "start with spoken responses disabled")
	startCmd.Flags().BoolVar(&startTextOnly, "text", false, "read typed input only, even with a transcriber configured")
	startCmd.Flags().StringVarP(&startModel, "model", "m", "", "override the configured model name")
	startCmd.Flags().IntVar(&startTimeout, "timeout", 0, "listen timeout in seconds for voice input")
	rootCmd.AddCommand(startCmd)
}
