//go:build !nowindow

package main

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/term-pong/app"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/window"
)

func runWindow(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	player := openAudio(cfg.Audio, logger)
	defer player.Cleanup()

	// Windows deliver key releases, no hold timeout needed
	g, err := app.NewGame(cfg, input.NewKeys(0, 0, nil), player, logger)
	if err != nil {
		return err
	}
	return window.Run(ctx, g, "term-pong")
}
