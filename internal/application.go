package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/transport/console"
	"github.com/rocketscienceinc/gomoku/internal/usecase"
)

// RunApp - plays one game on in and out with the configured mode and difficulty.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	mode, err := entity.ParseMode(conf.Game.Mode)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	difficulty, err := gomoku.ParseDifficulty(conf.Game.Difficulty)
	if err != nil {
		log.Warn("Invalid difficulty, defaulting to medium", "error", err)
		difficulty = gomoku.DifficultyMedium
	}

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	selector := gomoku.NewSelector(conf.Game.DefenseWeight, rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
	session := usecase.NewGameSession(logger, mode, difficulty, selector)
	driver := console.NewDriver(logger, session, in, out)

	log.Info("Starting game", "mode", mode, "difficulty", difficulty.String(), "session", session.ID())

	if err = driver.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}

		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game over", "outcome", session.CheckTerminal().String(), "moves", session.MoveCount())

	return nil
}
