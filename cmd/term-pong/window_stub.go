//go:build nowindow

package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lixenwraith/term-pong/config"
)

func runWindow(context.Context, config.Config, *slog.Logger) error {
	return errors.New("built with nowindow, window frontend unavailable")
}
