// terrasky runs the game in the local terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"terrasky/internal/config"
	"terrasky/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Int64("seed", 0, "World seed (0 uses the config seed, or the clock)")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	if err := run(*cfgPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, seed int64, logPath string) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, err := game.NewWithOptions(game.Options{Config: cfg, Logger: logger, SaveRun: true})
	if err != nil {
		return err
	}
	g.Run(context.Background())
	return nil
}
