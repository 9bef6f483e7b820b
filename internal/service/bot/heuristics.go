package bot

import (
	"github.com/iamasit07/connect4/internal/domain"
)

// WinningMove returns the leftmost drop that gives own an immediate win.
func WinningMove(board *domain.Board, rules *domain.Rules, own domain.PlayerID) (domain.Move, bool) {
	return firstWinningDrop(board, rules, own)
}

// BlockingMove returns the leftmost drop where opponent would win next turn.
func BlockingMove(board *domain.Board, rules *domain.Rules, opponent domain.PlayerID) (domain.Move, bool) {
	return firstWinningDrop(board, rules, opponent)
}

// RandomMove picks uniformly among columns that still have room.
func (s *Selector) RandomMove(board *domain.Board) (domain.Move, error) {
	open := board.OpenColumns()
	if len(open) == 0 {
		return domain.InvalidMove, domain.ErrBoardFull
	}
	return domain.DropMove(board, open[s.rng.Intn(len(open))]), nil
}

func firstWinningDrop(board *domain.Board, rules *domain.Rules, code domain.PlayerID) (domain.Move, bool) {
	for col := 0; col < board.Width(); col++ {
		row := board.LandingRow(col)
		if row == domain.NoRow {
			continue
		}
		if board.Trial(row, col, code, rules.WinSituation) {
			return domain.Move{Row: row, Column: col}, true
		}
	}
	return domain.InvalidMove, false
}
