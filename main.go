package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"fishchase/internal/app"
	"fishchase/internal/assets"
	"fishchase/internal/desktop"
	"fishchase/internal/game"
	"fishchase/internal/logx"
	tui "fishchase/internal/term"
)

const logLevelEnv = "FISHCHASE_LOG_LEVEL"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fishchase: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fishchase", flag.ContinueOnError)
	defaults := assets.DefaultPaths()
	var (
		useTUI   = fs.Bool("tui", false, "play in the terminal instead of a window")
		config   = fs.String("config", "", "YAML tuning file")
		seed     = fs.String("seed", "", "spawn RNG seed (default $"+app.SeedEnv+" or the clock)")
		player   = fs.String("player", defaults.Player, "player sprite image")
		obstacle = fs.String("obstacle", defaults.Obstacle, "red fish sprite image")
		level    = fs.String("log-level", os.Getenv(logLevelEnv), "trace, debug, info, warn or error")
		logFile  = fs.String("log-file", "fishchase.log", "log destination in terminal mode")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	lvl, err := logx.ParseLevel(*level)
	if err != nil {
		return err
	}
	var out io.Writer = os.Stderr
	if *useTUI {
		// tcell owns the terminal.
		f, err := logx.OpenFile(*logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log := logx.New(out, lvl, !*useTUI && term.IsTerminal(int(os.Stderr.Fd())))

	tuning, err := game.LoadTuning(*config)
	if err != nil {
		return err
	}
	s, err := app.ResolveSeed(*seed, os.Getenv(app.SeedEnv), time.Now())
	if err != nil {
		return err
	}

	cfg := app.Config{
		Tuning: tuning,
		Seed:   s,
		Assets: assets.Paths{Player: *player, Obstacle: *obstacle},
		Log:    log,
	}
	if *useTUI {
		return tui.Run(cfg)
	}
	return desktop.Run(cfg)
}
