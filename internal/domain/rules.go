package domain

import "fmt"

// Rules evaluates a board for legality and termination. It never keeps a
// reference to the board it is given.
type Rules struct {
	winLength int
}

func NewRules(winLength int) (*Rules, error) {
	if winLength <= 0 {
		return nil, fmt.Errorf("win length %d: %w", winLength, ErrInvalidConfig)
	}
	return &Rules{winLength: winLength}, nil
}

func (r *Rules) WinLength() int { return r.winLength }

func (r *Rules) IsLegal(row, column int, b *Board) bool {
	return b.InBounds(row, column) && b.Cell(row, column) == Empty
}

// WinSituation reports whether any row, column or diagonal holds a
// contiguous run of at least winLength identical non-empty codes.
func (r *Rules) WinSituation(b *Board) bool {
	for row := 0; row < b.Height(); row++ {
		if r.hasRun(b.Row(row)) {
			return true
		}
	}
	for col := 0; col < b.Width(); col++ {
		if r.hasRun(b.Column(col)) {
			return true
		}
	}

	// only diagonals at least winLength long are scanned
	for offset := -(b.Height() - r.winLength); offset <= b.Width()-r.winLength; offset++ {
		if r.hasRun(b.Diagonal(offset)) || r.hasRun(b.AntiDiagonal(offset)) {
			return true
		}
	}
	return false
}

func (r *Rules) IsTerminal(b *Board) bool {
	return r.Evaluate(b) != OutcomeNone
}

// Evaluate distinguishes a win from a draw. A board that is both full and
// won counts as a win.
func (r *Rules) Evaluate(b *Board) Outcome {
	if r.WinSituation(b) {
		return OutcomeWin
	}
	if b.IsFull() {
		return OutcomeDraw
	}
	return OutcomeNone
}

func (r *Rules) hasRun(line Line) bool {
	count := 0
	previous := Empty
	for i := 0; i < line.Len(); i++ {
		code := line.At(i)
		switch {
		case code == Empty:
			count = 0
		case code == previous:
			count++
		default:
			count = 1
		}
		previous = code

		if count >= r.winLength {
			return true
		}
	}
	return false
}
