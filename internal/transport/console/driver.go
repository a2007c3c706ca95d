package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

type uSession interface {
	Mode() entity.Mode
	Turn() entity.Mark
	Board() entity.Grid
	CheckTerminal() entity.Outcome

	ApplyMove(row, col int) (entity.Move, error)
	PlayAI() (gomoku.Choice, entity.Move, error)
	Undo() (int, error)
}

// handler returns true when the game loop should stop.
type handler func(ctx context.Context, command *Command) (bool, error)

// Driver runs one game over a line-oriented reader and writer.
type Driver struct {
	logger  *slog.Logger
	session uSession

	in  *bufio.Scanner
	out io.Writer

	handlers map[string]handler
}

func NewDriver(logger *slog.Logger, session uSession, in io.Reader, out io.Writer) *Driver {
	driver := &Driver{
		logger:  logger.With("component", "console"),
		session: session,

		in:  bufio.NewScanner(in),
		out: out,

		handlers: make(map[string]handler),
	}

	driver.handlers[ActionMove] = driver.handleMove
	driver.handlers[ActionUndo] = driver.handleUndo
	driver.handlers[ActionQuit] = driver.handleQuit

	return driver
}

// Run - plays until the game ends, the input is exhausted or ctx is canceled.
func (that *Driver) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := Render(that.out, that.session.Board()); err != nil {
			return err
		}
		that.prompt()

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed")
			return nil
		}

		command, err := ParseCommand(that.in.Text())
		if err != nil {
			log.Debug("unparsable input", "error", err)
			that.printf("Invalid move.\n")
			continue
		}

		done, err := that.handlers[command.Action](ctx, &command)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}

func (that *Driver) prompt() {
	if that.session.Mode() == entity.ModePvAI {
		that.printf("your turn (or type 'r' to undo): ")
		return
	}

	that.printf("player %s's turn (or type 'r' to undo): ", that.session.Turn())
}

func (that *Driver) handleMove(_ context.Context, command *Command) (bool, error) {
	_, err := that.session.ApplyMove(command.Row, command.Col)
	if errors.Is(err, apperror.ErrInvalidMove) {
		that.printf("Invalid move.\n")
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to apply move: %w", err)
	}

	if that.announce() {
		return true, nil
	}

	if that.session.Mode() != entity.ModePvAI {
		return false, nil
	}

	choice, _, err := that.session.PlayAI()
	if err != nil {
		return false, fmt.Errorf("computer failed to move: %w", err)
	}

	if choice.Scored {
		that.printf("computer move: %d %d (score %d)\n", choice.Row, choice.Col, choice.Score)
	} else {
		that.printf("computer move: %d %d\n", choice.Row, choice.Col)
	}

	return that.announce(), nil
}

func (that *Driver) handleUndo(_ context.Context, _ *Command) (bool, error) {
	_, err := that.session.Undo()

	switch {
	case err == nil:
		that.printf("Undo successful.\n")
	case errors.Is(err, apperror.ErrNoMoveToUndo):
		that.printf("Nothing to undo.\n")
	default:
		return false, fmt.Errorf("failed to undo: %w", err)
	}

	return false, nil
}

func (that *Driver) handleQuit(_ context.Context, _ *Command) (bool, error) {
	that.printf("Bye.\n")
	return true, nil
}

// announce prints the final board and result when the game is over.
func (that *Driver) announce() bool {
	outcome := that.session.CheckTerminal()
	if !outcome.IsFinished() {
		return false
	}

	if err := Render(that.out, that.session.Board()); err != nil {
		that.logger.Error("failed to render board", "error", err)
	}

	switch {
	case outcome.Status == entity.StatusDraw:
		that.printf("Draw! The board is full.\n")
	case that.session.Mode() == entity.ModePvP:
		that.printf("player %s won!\n", outcome.Winner)
	case outcome.Winner == entity.HumanPlayer:
		that.printf("you win!\n")
	default:
		that.printf("you lose!\n")
	}

	return true
}

func (that *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
