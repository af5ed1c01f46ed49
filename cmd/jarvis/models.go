package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyondev/jarvis/internal/config"
	"github.com/halcyondev/jarvis/internal/providers/llm"
	"github.com/halcyondev/jarvis/internal/service/ui"
	"github.com/halcyondev/jarvis/pkg/log"
	"github.com/halcyondev/jarvis/pkg/retry"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available from the Gemini API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			log.FromCtx(ctx).Fatal().Err(err).Msg("failed to init env")
		}

		cfg := config.NewGeminiConfig(ctx)
		g := llm.NewGemini(cfg.APIKey, cfg.Model)

		var models []llm.ModelInfo
		err := retry.NewDefaultRetrier().Do(ctx, func() error {
			var err error
			models, err = g.Models(ctx)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}

		fmt.Println(ui.TitleStyle.Render("AVAILABLE MODELS"))
		for _, m := range models {
			name := ui.UsageStyle.Render(m.ID)
			if m.ID == cfg.Model {
				name += ui.FlagStyle.Render("  (current)")
			}
			fmt.Printf("  %s  %s\n", name, ui.DescStyle.Render(m.DisplayName))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
