package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/halcyondev/jarvis/internal/config"
	"github.com/halcyondev/jarvis/internal/service/installer"
	"github.com/halcyondev/jarvis/pkg/log"
)

var installCmd = &cobra.Command{
	Use:           "setup",
	Aliases:       []string{"install"},
	Short:         "Configure Jarvis interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup")

		// run wizard (includes save step)
		_, err := installer.RunWizard()
		if err != nil {
			return err
		}

		// Load the newly created .env file so the log lines below reflect it
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Setup complete! You can now run 'jarvis start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
