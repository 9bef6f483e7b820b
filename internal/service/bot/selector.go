package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
)

// Selector picks moves for the automated player. It only reads the board;
// committing the chosen move is left to the caller.
type Selector struct {
	rng *rand.Rand
}

// NewSelector uses src for the fallback pick. A nil src seeds from the clock.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{rng: rand.New(src)}
}

// SelectMove tries, in order, a move that wins now, a move that blocks the
// opponent's immediate win, and a random open column.
func (s *Selector) SelectMove(board *domain.Board, rules *domain.Rules, own, opponent domain.PlayerID) (domain.Move, error) {
	if move, ok := WinningMove(board, rules, own); ok {
		return move, nil
	}
	if move, ok := BlockingMove(board, rules, opponent); ok {
		return move, nil
	}
	return s.RandomMove(board)
}
