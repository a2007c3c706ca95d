package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// captureFlags swaps the command actions for ones that only apply flags to conf.
func captureFlags(conf *config.Config) *cli.Command {
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		applyFlags(c, conf, "")
		return nil
	}

	for _, sub := range cmd.Commands {
		mode := entity.Mode(sub.Name)
		sub.Action = func(_ context.Context, c *cli.Command) error {
			applyFlags(c, conf, mode)
			return nil
		}
	}

	return cmd
}

func TestApplyFlags(t *testing.T) {
	t.Run("Computer flags override config", func(t *testing.T) {
		// Given: a config with defaults
		conf := &config.Config{LogLevel: "info", Game: config.Game{Mode: "pvp", Difficulty: 2, DefenseWeight: 1.2}}

		// When: running the ai subcommand with flags
		err := captureFlags(conf).Run(context.Background(),
			[]string{"gomoku", "--log-level", "debug", "ai", "-d", "3", "--defense-weight", "1.5", "--seed", "7"})

		// Then: every flag lands in the config
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "ai", conf.Game.Mode)
		assert.Equal(t, 3, conf.Game.Difficulty)
		assert.InDelta(t, 1.5, conf.Game.DefenseWeight, 1e-9)
		assert.Equal(t, int64(7), conf.Game.Seed)
	})

	t.Run("Unset flags keep config values", func(t *testing.T) {
		conf := &config.Config{LogLevel: "warn", Game: config.Game{Mode: "ai", Difficulty: 1, DefenseWeight: 1.2}}

		err := captureFlags(conf).Run(context.Background(), []string{"gomoku", "pvp"})

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "pvp", conf.Game.Mode)
		assert.Equal(t, 1, conf.Game.Difficulty)
	})

	t.Run("No subcommand uses the configured mode", func(t *testing.T) {
		conf := &config.Config{Game: config.Game{Mode: "ai"}}

		err := captureFlags(conf).Run(context.Background(), []string{"gomoku"})

		require.NoError(t, err)
		assert.Equal(t, "ai", conf.Game.Mode)
	})
}

func TestInitLogger(t *testing.T) {
	ctx := context.Background()

	debug := initLogger(&config.Config{LogLevel: "debug"})
	assert.True(t, debug.Enabled(ctx, slog.LevelDebug))

	warn := initLogger(&config.Config{LogLevel: "warn"})
	assert.False(t, warn.Enabled(ctx, slog.LevelInfo))
	assert.True(t, warn.Enabled(ctx, slog.LevelWarn))

	fallback := initLogger(&config.Config{LogLevel: "verbose"})
	assert.True(t, fallback.Enabled(ctx, slog.LevelInfo))
	assert.False(t, fallback.Enabled(ctx, slog.LevelDebug))
}
