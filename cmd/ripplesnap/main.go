// Command ripplesnap renders the ripple backdrop off screen and writes
// the last frame as a PNG.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/water-ripples/internal/config"
	"github.com/iburimskiy/water-ripples/internal/ripple"
	"github.com/iburimskiy/water-ripples/internal/snapshot"
)

func main() {
	var (
		out      = flag.String("o", "ripples.png", "output PNG path")
		cfgPath  = flag.String("config", "", "JSON ripple options (defaults to the page options)")
		width    = flag.Int("width", config.WindowWidth, "logical width")
		height   = flag.Int("height", config.WindowHeight, "logical height")
		dpr      = flag.Float64("dpr", 1, "device pixel ratio")
		seed     = flag.Int64("seed", 1, "random seed, 0 for time based")
		duration = flag.Float64("ms", 4000, "simulated milliseconds before the snapshot")
		bg       = flag.String("bg", "#000000", "background color as hex")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ripple.SetLogger(logger)
	gg.SetLogger(logger)

	opts := config.Page()
	if *cfgPath != "" {
		var err error
		if opts, err = config.Load(*cfgPath); err != nil {
			logger.Error("load options", "err", err)
			os.Exit(1)
		}
	}

	s := snapshot.New(*width, *height, *dpr)
	s.SetBackground(gg.Hex(*bg))

	f := snapshot.Render(s, *width, *height, opts, *seed, *duration)
	err := s.SavePNG(*out)
	_ = s.Close()
	if err != nil {
		logger.Error("write snapshot", "path", *out, "err", err)
		os.Exit(1)
	}
	logger.Info("snapshot written", "path", *out, "ripples", f.Len())
}
