package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/water-ripples/internal/config"
	"github.com/iburimskiy/water-ripples/internal/game"
	"github.com/iburimskiy/water-ripples/internal/ripple"
)

func main() {
	var (
		cfgPath       = flag.String("config", "", "JSON file overriding the ripple options")
		reducedMotion = flag.Bool("reduced-motion", os.Getenv("PREFERS_REDUCED_MOTION") == "1", "show the static theme instead of ripples")
		hideUnfocused = flag.Bool("pause-unfocused", false, "suspend ripples while the window is unfocused")
		seed          = flag.Int64("seed", 0, "random seed, 0 for time based")
		logLevel      = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	ripple.SetLogger(logger)

	opts := config.Page()
	if *cfgPath != "" {
		var err error
		if opts, err = config.Load(*cfgPath); err != nil {
			fatal(err)
		}
	}

	g := game.New(game.Settings{
		Ripple:        opts,
		ReducedMotion: *reducedMotion,
		HideOnUnfocus: *hideUnfocused,
		Seed:          *seed,
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ripples - click to drop, S: snapshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The loop keeps running unfocused so Update can suspend the field.
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error("ripples stopped", "err", err)
	_ = zenity.Error(err.Error(), zenity.Title("Ripples"), zenity.ErrorIcon)
	os.Exit(1)
}
