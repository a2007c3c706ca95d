package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/pkg"
)

type moveSelector interface {
	SelectMove(board *entity.Board, player entity.Mark, difficulty gomoku.Difficulty) (gomoku.Choice, error)
}

// GameSession owns one game: the board with its move log, the player to move and the last outcome.
// It is driven by a single caller and is not safe for concurrent use.
type GameSession struct {
	logger *slog.Logger

	id         string
	mode       entity.Mode
	difficulty gomoku.Difficulty
	selector   moveSelector

	board   *entity.Board
	turn    entity.Mark
	outcome entity.Outcome
}

func NewGameSession(logger *slog.Logger, mode entity.Mode, difficulty gomoku.Difficulty, selector moveSelector) *GameSession {
	id := pkg.GenerateSessionID()

	session := &GameSession{
		logger: logger.With("component", "session", "sessionID", id),

		id:         id,
		mode:       mode,
		difficulty: difficulty,
		selector:   selector,

		board: entity.NewBoard(),
	}
	session.Reset()

	return session
}

// Reset - starts the game over with X to move.
func (that *GameSession) Reset() {
	that.board.Reset()
	that.turn = entity.PlayerX
	that.outcome = entity.Ongoing()

	that.logger.Info("game started", "mode", that.mode, "difficulty", that.difficulty.String())
}

func (that *GameSession) ID() string {
	return that.id
}

func (that *GameSession) Mode() entity.Mode {
	return that.mode
}

func (that *GameSession) Difficulty() gomoku.Difficulty {
	return that.difficulty
}

func (that *GameSession) Turn() entity.Mark {
	return that.turn
}

func (that *GameSession) Board() entity.Grid {
	return that.board.Snapshot()
}

func (that *GameSession) MoveCount() int {
	return that.board.MoveCount()
}

func (that *GameSession) CheckTerminal() entity.Outcome {
	return that.outcome
}

func (that *GameSession) Validate(row, col int) bool {
	return gomoku.IsValidMove(that.board, row, col)
}

// ApplyMove - places a stone for the player to move and updates the outcome.
func (that *GameSession) ApplyMove(row, col int) (entity.Move, error) {
	if that.outcome.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if !that.Validate(row, col) {
		return entity.Move{}, fmt.Errorf("%w: %d %d", apperror.ErrInvalidMove, row, col)
	}

	move := that.board.Apply(row, col, that.turn)
	that.outcome = gomoku.CheckTerminal(that.board)

	log := that.logger.With("method", "ApplyMove")
	log.Debug("move applied", "row", row, "col", col, "player", move.Player)

	if that.outcome.IsFinished() {
		log.Info("game finished", "outcome", that.outcome.String(), "moves", that.board.MoveCount())
		return move, nil
	}

	that.turn = move.Player.Opponent()

	return move, nil
}

// PlayAI - lets the computer pick and play its move.
func (that *GameSession) PlayAI() (gomoku.Choice, entity.Move, error) {
	if that.outcome.IsFinished() {
		return gomoku.Choice{}, entity.Move{}, apperror.ErrGameFinished
	}

	if that.mode != entity.ModePvAI || that.turn != entity.ComputerPlayer {
		return gomoku.Choice{}, entity.Move{}, apperror.ErrNotAITurn
	}

	choice, err := that.selector.SelectMove(that.board, that.turn, that.difficulty)
	if err != nil {
		return gomoku.Choice{}, entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	that.logger.Debug("computer move selected",
		"method", "PlayAI", "row", choice.Row, "col", choice.Col, "score", choice.Score, "scored", choice.Scored)

	move, err := that.ApplyMove(choice.Row, choice.Col)
	if err != nil {
		return choice, entity.Move{}, fmt.Errorf("failed to apply computer move: %w", err)
	}

	return choice, move, nil
}

// Undo - takes back one move between humans, or the computer's reply together with the human move
// before it. Returns the number of removed moves.
func (that *GameSession) Undo() (int, error) {
	depth := that.mode.UndoDepth()

	if err := that.UndoMoves(depth); err != nil {
		return 0, err
	}

	return depth, nil
}

// UndoMoves removes count moves, or none when the log is shorter than count. The player of the last
// removed move is to move again.
func (that *GameSession) UndoMoves(count int) error {
	log := that.logger.With("method", "UndoMoves")

	if that.outcome.IsFinished() {
		return apperror.ErrGameFinished
	}

	if count <= 0 || that.board.MoveCount() < count {
		return fmt.Errorf("%w: have %d, need %d", apperror.ErrNoMoveToUndo, that.board.MoveCount(), count)
	}

	for range count {
		move, err := that.board.UndoLast()
		if err != nil {
			return fmt.Errorf("failed to undo move: %w", err)
		}

		that.turn = move.Player
	}

	that.outcome = entity.Ongoing()
	log.Info("moves undone", "count", count, "turn", that.turn)

	return nil
}
