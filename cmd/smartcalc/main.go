// Command smartcalc is a line based front-end to the calculator sessions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"smartcalc/internal/buildinfo"
	"smartcalc/internal/config"
	"smartcalc/internal/logging"
)

const (
	historyFile = ".smartcalc_history"
	prompt      = "calc> "
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfgPath, logLevel, expr string
	flag.StringVar(&cfgPath, "config", "", "Path to a TOML or YAML config file.")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level written to stderr.")
	flag.StringVar(&expr, "e", "", "Evaluate one expression and exit.")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	log := logging.New(logLevel, os.Stderr)
	r := newREPL(cfg, log, os.Stdout)

	if expr != "" {
		if !r.eval(expr) {
			return 1
		}
		return 0
	}

	fmt.Printf("smartcalc %s (%s). Type :help for commands.\n", buildinfo.Short(), r.math.AngleUnit())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if r.exec(line) {
			return 0
		}
	}
}
