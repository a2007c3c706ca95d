package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/gomoku/internal"
	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// main - is the entry point of the application. It loads .env, parses the command line and runs one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	loadDotEnv()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "gomoku",
		Usage: "five in a row on a 15x15 board",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "./config.yml", Usage: "path to the config file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, "")
		},
		Commands: []*cli.Command{
			{
				Name:  "pvp",
				Usage: "two players on one terminal",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, cmd, entity.ModePvP)
				},
			},
			{
				Name:  "ai",
				Usage: "play X against the computer",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "difficulty", Aliases: []string{"d"}, Usage: "1 random, 2 scoring, 3 scoring and defense"},
					&cli.FloatFlag{Name: "defense-weight", Usage: "opponent score weight at difficulty 3"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 uses the clock"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, cmd, entity.ModePvAI)
				},
			},
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, mode entity.Mode) error {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	applyFlags(cmd, conf, mode)

	return app.RunApp(ctx, initLogger(conf), conf, os.Stdin, os.Stdout)
}

// applyFlags - command line values win over the config file.
func applyFlags(cmd *cli.Command, conf *config.Config, mode entity.Mode) {
	if mode != "" {
		conf.Game.Mode = string(mode)
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	if mode != entity.ModePvAI {
		return
	}

	if cmd.IsSet("difficulty") {
		conf.Game.Difficulty = cmd.Int("difficulty")
	}

	if cmd.IsSet("defense-weight") {
		conf.Game.DefenseWeight = cmd.Float("defense-weight")
	}

	if cmd.IsSet("seed") {
		conf.Game.Seed = cmd.Int64("seed")
	}
}

// loadDotEnv - a missing .env file is fine.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "could not load .env: %v\n", err)
	}
}

// initialize logger. Logs go to stderr so the board on stdout stays readable.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
