package domain

import "fmt"

// NoRow is returned by LandingRow when a column has no room.
const NoRow = -1

// Board is a width x height grid of occupancy codes, indexed [row][column]
// with row 0 at the top.
type Board struct {
	width  int
	height int
	cells  [][]PlayerID
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", width, height, ErrInvalidConfig)
	}

	cells := make([][]PlayerID, height)
	for i := range cells {
		cells[i] = make([]PlayerID, width)
	}
	return &Board{width: width, height: height, cells: cells}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.height && column >= 0 && column < b.width
}

// Cell returns the code at (row, column). Callers must stay in bounds.
func (b *Board) Cell(row, column int) PlayerID {
	return b.cells[row][column]
}

// Place writes code into a single cell. Legality is the caller's job.
func (b *Board) Place(code PlayerID, row, column int) {
	b.cells[row][column] = code
}

// Clear resets every cell to Empty, keeping the same backing storage.
func (b *Board) Clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty
		}
	}
}

func (b *Board) IsFull() bool {
	for r := range b.cells {
		for _, code := range b.cells[r] {
			if code == Empty {
				return false
			}
		}
	}
	return true
}

// LandingRow resolves gravity for a column: the lowest empty row, or NoRow
// when the column is full or out of range.
func (b *Board) LandingRow(column int) int {
	if column < 0 || column >= b.width {
		return NoRow
	}

	// shifting from bottom to top till we find an empty cell
	for row := b.height - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row
		}
	}
	return NoRow
}

// OpenColumns lists, left to right, the columns that still take a piece.
func (b *Board) OpenColumns() []int {
	open := []int{}
	for col := 0; col < b.width; col++ {
		if b.LandingRow(col) != NoRow {
			open = append(open, col)
		}
	}
	return open
}

// Trial places code at (row, column), runs probe, and always puts the
// previous code back before returning.
func (b *Board) Trial(row, column int, code PlayerID, probe func(*Board) bool) bool {
	previous := b.cells[row][column]
	defer func() { b.cells[row][column] = previous }()

	b.cells[row][column] = code
	return probe(b)
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Snapshot()}
}

// Snapshot copies the grid out for rendering or inspection.
func (b *Board) Snapshot() [][]PlayerID {
	grid := make([][]PlayerID, len(b.cells))
	for i := range b.cells {
		grid[i] = make([]PlayerID, len(b.cells[i]))
		copy(grid[i], b.cells[i])
	}
	return grid
}
