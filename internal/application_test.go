package application

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/testing/suite"
)

func TestRunApp(t *testing.T) {
	t.Run("Two players", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Game: config.Game{Mode: "pvp", Difficulty: 2, DefenseWeight: 1.2}}

		input := "7 7\n0 0\n7 8\n0 1\n7 9\n0 2\n7 10\n0 3\n7 11\n"
		var out bytes.Buffer

		err := RunApp(ctx, st.Logger, conf, strings.NewReader(input), &out)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "player X won!\n"))
	})

	t.Run("Against the computer with a fixed seed", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Game: config.Game{Mode: "ai", Difficulty: 3, DefenseWeight: 1.2, Seed: 5}}

		var out bytes.Buffer
		err := RunApp(ctx, st.Logger, conf, strings.NewReader("7 7\nq\n"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "computer move: 6 7 (score 51)")
	})

	t.Run("Invalid difficulty falls back to medium", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Game: config.Game{Mode: "ai", Difficulty: 9, DefenseWeight: 1.2, Seed: 5}}

		var out bytes.Buffer
		err := RunApp(ctx, st.Logger, conf, strings.NewReader("7 7\n"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "computer move: 6 7 (score 23)")
	})

	t.Run("Unknown mode", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Game: config.Game{Mode: "online"}}

		err := RunApp(ctx, st.Logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})

	t.Run("Canceled before the first move", func(t *testing.T) {
		_, st := suite.New(t)
		conf := &config.Config{Game: config.Game{Mode: "pvp", Difficulty: 2}}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RunApp(ctx, st.Logger, conf, strings.NewReader("7 7\n"), &bytes.Buffer{})

		require.NoError(t, err)
	})
}
