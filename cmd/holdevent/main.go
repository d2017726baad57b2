package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/go-holdevent/hold/app"
	"github.com/valerio/go-holdevent/hold/config"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "holdevent"
	cliApp.Description = "Press-and-hold detection for pointers and keys"
	cliApp.Usage = "holdevent [options]"
	cliApp.Version = "1.0.0"
	cliApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file (default: ./holdevent.yaml or ~/.config/holdevent/holdevent.yaml)",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Input backend: terminal, headless or sdl2",
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "YAML input script to replay (required for headless)",
		},
		cli.IntFlag{
			Name:  "interval",
			Usage: "Milliseconds between holding events (0 = every frame)",
		},
		cli.StringSliceFlag{
			Name:  "key",
			Usage: "KeyboardEvent.code to hold, e.g. Space or KeyW (repeatable)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
	}
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		slog.Error("Error running holdevent", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	// Flags win over the config file and environment
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("script") {
		cfg.Script = c.String("script")
	}
	if c.IsSet("interval") {
		cfg.IntervalMS = c.Int("interval")
	}
	if c.IsSet("key") {
		cfg.Keys = c.StringSlice("key")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal backend replaces this with its on-screen log
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	defer slog.SetDefault(logger)

	b, err := app.NewBackend(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.New(cfg, b).Run(ctx)
}
