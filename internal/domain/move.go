package domain

// Move is a target cell chosen by a player.
type Move struct {
	Row    int
	Column int
}

var (
	// Withdrawal means the player gave up. It is not a coordinate and must
	// not be validated as one.
	Withdrawal = Move{Row: -2, Column: -2}

	// InvalidMove stands for input that could not be turned into a cell.
	// It is always out of bounds, so IsLegal rejects it.
	InvalidMove = Move{Row: -1, Column: -1}
)

func (m Move) IsWithdrawal() bool {
	return m == Withdrawal
}

// DropMove resolves gravity for column. A full or unknown column yields
// InvalidMove.
func DropMove(b *Board, column int) Move {
	row := b.LandingRow(column)
	if row == NoRow {
		return InvalidMove
	}
	return Move{Row: row, Column: column}
}
