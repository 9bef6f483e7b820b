package domain

// Game tracks one round on a board: whose turn it is and how it ended.
type Game struct {
	Board         *Board
	Rules         *Rules
	CurrentPlayer PlayerID
	Outcome       Outcome
	Winner        PlayerID
	MoveCount     int
}

// NewGame clears board and starts a round with Player1 to move.
func NewGame(board *Board, rules *Rules) *Game {
	board.Clear()
	return &Game{
		Board:         board,
		Rules:         rules,
		CurrentPlayer: Player1,
		Outcome:       OutcomeNone,
		Winner:        Empty,
	}
}

// MakeMove applies the current player's move. Win is checked before a full
// board, so a last piece that wins is not reported as a draw.
func (g *Game) MakeMove(move Move) error {
	if g.IsFinished() {
		return ErrInvalidMove
	}
	if move.IsWithdrawal() || !g.Rules.IsLegal(move.Row, move.Column, g.Board) {
		return ErrInvalidMove
	}

	g.Board.Place(g.CurrentPlayer, move.Row, move.Column)
	g.MoveCount++

	g.Outcome = g.Rules.Evaluate(g.Board)
	if g.Outcome == OutcomeWin {
		g.Winner = g.CurrentPlayer
		return nil
	}
	if g.Outcome == OutcomeDraw {
		return nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)
	return nil
}

// Withdraw ends the round with the current player giving up.
func (g *Game) Withdraw() {
	if g.IsFinished() {
		return
	}
	g.Outcome = OutcomeWithdrawn
	g.Winner = Opponent(g.CurrentPlayer)
}

func (g *Game) IsFinished() bool {
	return g.Outcome != OutcomeNone
}

func Opponent(p PlayerID) PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}
