package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, width, height int) *Board {
	t.Helper()
	b, err := NewBoard(width, height)
	require.NoError(t, err)
	return b
}

func TestNewBoardRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 6}, {7, 0}, {-1, 6}, {7, -3}} {
		_, err := NewBoard(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidConfig, "dims %v", dims)
	}
}

func TestNewBoardStartsEmpty(t *testing.T) {
	b := newTestBoard(t, 7, 6)
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 6, b.Height())
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			assert.Equal(t, Empty, b.Cell(r, c))
		}
	}
	assert.False(t, b.IsFull())
}

func TestClearKeepsDimensions(t *testing.T) {
	b := newTestBoard(t, 4, 4)
	b.Place(Player1, 3, 0)
	b.Place(Player2, 0, 3)

	b.Clear()

	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, Empty, b.Cell(3, 0))
	assert.Equal(t, Empty, b.Cell(0, 3))
}

func TestIsFull(t *testing.T) {
	b := newTestBoard(t, 3, 2)
	// alternating columns, no run longer than two
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			code := Player1
			if (r+c)%2 == 1 {
				code = Player2
			}
			b.Place(code, r, c)
		}
	}
	assert.True(t, b.IsFull())

	b.Place(Empty, 1, 1)
	assert.False(t, b.IsFull())
}

func TestLandingRowFollowsGravity(t *testing.T) {
	b := newTestBoard(t, 7, 6)
	assert.Equal(t, 5, b.LandingRow(0), "empty column lands on the bottom row")

	b.Place(Player1, 5, 0)
	b.Place(Player2, 4, 0)
	assert.Equal(t, 3, b.LandingRow(0))

	for r := 0; r < 6; r++ {
		b.Place(Player1, r, 6)
	}
	assert.Equal(t, NoRow, b.LandingRow(6))
	assert.Equal(t, NoRow, b.LandingRow(-1))
	assert.Equal(t, NoRow, b.LandingRow(7))
}

func TestOpenColumnsSkipsFullColumns(t *testing.T) {
	b := newTestBoard(t, 3, 2)
	b.Place(Player1, 1, 1)
	b.Place(Player2, 0, 1)
	assert.Equal(t, []int{0, 2}, b.OpenColumns())
}

func TestTrialRestoresCell(t *testing.T) {
	b := newTestBoard(t, 7, 6)
	seen := Empty
	got := b.Trial(5, 2, Player2, func(tb *Board) bool {
		seen = tb.Cell(5, 2)
		return true
	})

	assert.True(t, got)
	assert.Equal(t, Player2, seen)
	assert.Equal(t, Empty, b.Cell(5, 2))
}

func TestTrialRestoresCellOnPanic(t *testing.T) {
	b := newTestBoard(t, 7, 6)
	b.Place(Player1, 5, 2)

	assert.Panics(t, func() {
		b.Trial(5, 2, Player2, func(*Board) bool { panic("probe failed") })
	})
	assert.Equal(t, Player1, b.Cell(5, 2))
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t, 7, 6)
	b.Place(Player1, 5, 3)

	cp := b.Clone()
	cp.Place(Player2, 4, 3)

	assert.Equal(t, Empty, b.Cell(4, 3))
	assert.Equal(t, Player1, cp.Cell(5, 3))
}

func TestLineViews(t *testing.T) {
	// 4 wide, 3 high:
	//   1 2 3 4
	//   5 6 7 8
	//   9 . . .
	b := newTestBoard(t, 4, 3)
	n := PlayerID(1)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if n <= 9 {
				b.Place(n, r, c)
			}
			n++
		}
	}

	assert.Equal(t, []PlayerID{5, 6, 7, 8}, b.Row(1).Codes())
	assert.Equal(t, []PlayerID{2, 6, 0}, b.Column(1).Codes())

	assert.Equal(t, []PlayerID{1, 6, 0}, b.Diagonal(0).Codes())
	assert.Equal(t, []PlayerID{2, 7, 0}, b.Diagonal(1).Codes())
	assert.Equal(t, []PlayerID{4}, b.Diagonal(3).Codes())
	assert.Equal(t, []PlayerID{5, 0}, b.Diagonal(-1).Codes())
	assert.Equal(t, 0, b.Diagonal(4).Len())

	assert.Equal(t, []PlayerID{9, 6, 3}, b.AntiDiagonal(0).Codes())
	assert.Equal(t, []PlayerID{0, 7, 4}, b.AntiDiagonal(1).Codes())
	assert.Equal(t, []PlayerID{5, 2}, b.AntiDiagonal(-1).Codes())
	assert.Equal(t, []PlayerID{1}, b.AntiDiagonal(-2).Codes())
}
