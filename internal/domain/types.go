package domain

// PlayerID is the occupancy code of a single cell.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	switch p {
	case Empty:
		return "empty"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "unknown"
}

const (
	DefaultColumns   = 7
	DefaultRows      = 6
	DefaultWinLength = 4
)

// to represent how a round ended
type Outcome string

const (
	OutcomeNone      Outcome = "none"
	OutcomeWin       Outcome = "win"
	OutcomeDraw      Outcome = "draw"
	OutcomeWithdrawn Outcome = "withdrawn"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrBoardFull     Error = "board is full"
	ErrInvalidConfig Error = "invalid configuration"
)
