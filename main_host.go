package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"smartcalc/app"
	"smartcalc/hal"
	"smartcalc/internal/config"
	"smartcalc/internal/logging"
)

func main() {
	var (
		cfgPath  string
		logLevel string
		expr     string
		pngPath  string
		headless bool
		hc       hal.HeadlessConfig
	)
	flag.StringVar(&cfgPath, "config", "", "Path to a TOML or YAML config file.")
	flag.StringVar(&logLevel, "log-level", "", "Override the configured log level.")
	flag.StringVar(&expr, "expr", "", "Expression typed in at startup; a trailing newline presses Enter.")
	flag.StringVar(&pngPath, "png", "", "Write the last headless frame to this PNG file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	halCfg := hal.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Scale:  cfg.Window.Scale,
		TPS:    cfg.Window.TPS,
		Log:    os.Stderr,
	}
	appCfg := app.Config{
		Precision: cfg.Engine.Precision,
		Angle:     cfg.AngleUnit(),
		Graph:     cfg.GraphRequest(),
		Script:    expr,
	}

	var last hal.HAL
	newApp := app.NewStep(appCfg, func(h hal.HAL) zerolog.Logger {
		last = h
		return logging.New(cfg.Log.Level, logging.LineWriter(h.Logger()))
	})

	if !headless {
		if err := hal.RunWindow(halCfg, newApp); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := hal.RunHeadless(ctx, halCfg, newApp, hc)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pngPath != "" && last != nil {
		if err := writePNG(pngPath, last); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writePNG(path string, h hal.HAL) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hal.Snapshot(h.Display().Framebuffer())); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
