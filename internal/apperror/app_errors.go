package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoMoveToUndo      = errors.New("no move to undo")
	ErrBoardFull         = errors.New("board is full")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotAITurn         = errors.New("it's not the computer's turn")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInvalidCommand    = errors.New("invalid command")
)
