package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/term-pong/app"
	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/core"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/render"
)

var (
	frontendFlag = flag.String("frontend", "terminal", "Host: terminal, window")
	headlessFlag = flag.Bool("headless", false, "Run without screen or audio on a fixed timestep")
	framesFlag   = flag.Uint64("frames", 0, "Stop after this many frames (0 = until quit)")
	serveFlag    = flag.Bool("serve", false, "Headless only: serve automatically whenever play stops")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	launchFlag   = flag.String("launch", "", "Launch policy: fixed, random (overrides PONG_LAUNCH)")
	seedFlag     = flag.Uint64("seed", 0, "Random launch seed, 0 seeds from the clock (overrides PONG_SEED)")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
)

var errNotTerminal = errors.New("stdout is not a terminal, use -headless or -frontend window")

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-pong: %v\n", err)
		return 2
	}

	ctx, stop := core.NotifyContext(context.Background())
	defer stop()

	switch {
	case *headlessFlag:
		err = runHeadless(ctx, cfg, logger)
	case *frontendFlag == "window":
		err = runWindow(ctx, cfg, logger)
	case *frontendFlag == "terminal":
		err = runTerminal(ctx, cfg, logger)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontendFlag)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exit", "error", err)
		fmt.Fprintf(os.Stderr, "term-pong: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers flags over PONG_* environment over defaults
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "launch":
			cfg.Launch = *launchFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})

	return cfg, cfg.Validate()
}

func openAudio(cfg config.Audio, logger *slog.Logger) audio.Player {
	player, err := audio.Open(cfg, logger)
	if err != nil && !errors.Is(err, audio.ErrDisabled) {
		// Non-fatal, game can run without sound
		logger.Warn("audio unavailable, continuing silent", "error", err)
	}
	return player
}

func runTerminal(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	table := input.DefaultKeyTable()
	if err := table.ApplyOverrides(cfg.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer func() {
		core.SetCrashRestore(nil)
		screen.Fini()
	}()
	// Panic on the game goroutine: restore the terminal before the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbForeground))
	screen.HideCursor()

	player := openAudio(cfg.Audio, logger)
	defer player.Cleanup()

	g, err := app.NewGame(cfg, input.NewKeys(cfg.HoldTimeout, cfg.EdgeHoldTimeout, nil), player, logger)
	if err != nil {
		return err
	}
	return app.RunTerminal(ctx, g, screen, table, cfg.FrameInterval)
}

func runHeadless(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	g, err := app.NewGame(cfg, input.NewKeys(0, 0, nil), &audio.Silent{}, logger)
	if err != nil {
		return err
	}

	err = app.RunHeadless(ctx, g, app.HeadlessOptions{
		Step:      cfg.FrameInterval,
		Frames:    *framesFlag,
		AutoServe: *serveFlag,
	})

	f := g.Frame()
	fmt.Printf("session %s frames %d player1 %d player2 %d\n", f.SessionID, f.Tick, f.Score.Player1, f.Score.Player2)
	return err
}
