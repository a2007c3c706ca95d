package gomoku

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type Difficulty int

const (
	DifficultyEasy   Difficulty = 1 // random empty cell
	DifficultyMedium Difficulty = 2 // own line potential
	DifficultyHard   Difficulty = 3 // own potential plus weighted opponent threat
)

// DefaultDefenseWeight scales the opponent's score at Hard. It has not been tuned by play.
const DefaultDefenseWeight = 1.2

func ParseDifficulty(value int) (Difficulty, error) {
	switch difficulty := Difficulty(value); difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return difficulty, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidDifficulty, value)
	}
}

func (that Difficulty) String() string {
	switch that {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(that))
	}
}

// Choice is the cell picked by the selector. Scored is false for random picks.
type Choice struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Score  int  `json:"score"`
	Scored bool `json:"scored"`
}

type Selector struct {
	rnd           *rand.Rand
	defenseWeight float64
}

func NewSelector(defenseWeight float64, rnd *rand.Rand) *Selector {
	return &Selector{
		rnd:           rnd,
		defenseWeight: defenseWeight,
	}
}

// SelectMove picks a cell for player. Callers must not ask on a full board.
func (that *Selector) SelectMove(board *entity.Board, player entity.Mark, difficulty Difficulty) (Choice, error) {
	if difficulty == DifficultyEasy {
		return that.randomMove(board)
	}

	return that.bestMove(board, player, difficulty == DifficultyHard)
}

func (that *Selector) randomMove(board *entity.Board) (Choice, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return Choice{}, apperror.ErrBoardFull
	}

	cell := cells[that.rnd.Intn(len(cells))] //nolint: gosec // it's ok

	return Choice{Row: cell.Row, Col: cell.Col}, nil
}

func (that *Selector) bestMove(board *entity.Board, player entity.Mark, defend bool) (Choice, error) {
	best := Choice{Score: -1}
	found := false

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if !board.IsEmpty(row, col) {
				continue
			}

			score := Score(board, row, col, player)
			if defend {
				score += int(float64(Score(board, row, col, player.Opponent())) * that.defenseWeight)
			}

			// strictly greater keeps the first cell in row-major order on ties
			if !found || score > best.Score {
				best = Choice{Row: row, Col: col, Score: score, Scored: true}
				found = true
			}
		}
	}

	if !found {
		return Choice{}, apperror.ErrBoardFull
	}

	return best, nil
}
