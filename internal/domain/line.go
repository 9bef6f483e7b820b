package domain

// Line is a read-only view over a straight run of cells: a row, a column,
// or a diagonal. It does not copy the board.
type Line struct {
	board    *Board
	row, col int
	dRow     int
	dCol     int
	n        int
}

func (l Line) Len() int { return l.n }

func (l Line) At(i int) PlayerID {
	return l.board.cells[l.row+i*l.dRow][l.col+i*l.dCol]
}

// Codes copies the line out.
func (l Line) Codes() []PlayerID {
	out := make([]PlayerID, l.n)
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}

func (b *Board) Row(r int) Line {
	return Line{board: b, row: r, col: 0, dRow: 0, dCol: 1, n: b.width}
}

func (b *Board) Column(c int) Line {
	return Line{board: b, row: 0, col: c, dRow: 1, dCol: 0, n: b.height}
}

// Diagonal runs down-right through cells [i][i+offset]. Offset 0 starts in
// the top-left corner, positive offsets start further right, negative ones
// further down.
func (b *Board) Diagonal(offset int) Line {
	r0, c0, n := b.diagonalStart(offset)
	return Line{board: b, row: r0, col: c0, dRow: 1, dCol: 1, n: n}
}

// AntiDiagonal is Diagonal taken on the vertically flipped grid: it runs
// up-right, offset 0 starting in the bottom-left corner.
func (b *Board) AntiDiagonal(offset int) Line {
	r0, c0, n := b.diagonalStart(offset)
	return Line{board: b, row: b.height - 1 - r0, col: c0, dRow: -1, dCol: 1, n: n}
}

func (b *Board) diagonalStart(offset int) (r0, c0, n int) {
	if offset < 0 {
		r0 = -offset
	} else {
		c0 = offset
	}
	n = min(b.height-r0, b.width-c0)
	if n < 0 {
		n = 0
	}
	return r0, c0, n
}
