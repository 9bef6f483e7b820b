package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/pkg/uid"
)

// View receives everything the session wants shown to the players.
type View interface {
	ShowBoard(board *domain.Board, palette map[domain.PlayerID]string) error
	ShowTurn(p Player) error
	IllegalMove(p Player) error
	ShowResult(result RoundResult) error
}

type RoundResult struct {
	ID      string
	Outcome domain.Outcome
	// Player is the winner on OutcomeWin and the one who gave up on
	// OutcomeWithdrawn. Empty on a draw.
	Player   string
	Moves    int
	Duration time.Duration
}

type Score struct {
	Name   string
	Points int
}

// Session plays rounds on one board and keeps the tallies between them.
type Session struct {
	board  *domain.Board
	rules  *domain.Rules
	view   View
	logger *slog.Logger

	// held for a whole turn: ask, validate, place, evaluate
	mu sync.Mutex

	scoresMu sync.RWMutex
	scores   map[string]int
	order    []string
}

func NewSession(board *domain.Board, rules *domain.Rules, view View, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		board:  board,
		rules:  rules,
		view:   view,
		logger: logger.With("component", "session"),
		scores: make(map[string]int),
	}
}

// PlayRound clears the board and alternates first (Player1) and second
// (Player2) until someone wins, the board fills up, or a player withdraws.
func (s *Session) PlayRound(ctx context.Context, first, second Player) (RoundResult, error) {
	s.register(first.Name())
	s.register(second.Name())

	players := map[domain.PlayerID]Player{
		domain.Player1: first,
		domain.Player2: second,
	}
	palette := map[domain.PlayerID]string{
		domain.Player1: first.Color(),
		domain.Player2: second.Color(),
	}

	s.mu.Lock()
	g := domain.NewGame(s.board, s.rules)
	s.mu.Unlock()

	result := RoundResult{ID: uid.GenerateRoundID()}
	started := time.Now()
	logger := s.logger.With("round_id", result.ID)
	logger.Info("round started", "player1", first.Name(), "player2", second.Name())

	if err := s.view.ShowBoard(s.board, palette); err != nil {
		return RoundResult{}, err
	}

	for !g.IsFinished() {
		current := players[g.CurrentPlayer]
		if err := s.view.ShowTurn(current); err != nil {
			return RoundResult{}, err
		}
		if err := s.takeTurn(ctx, g, current, logger); err != nil {
			return RoundResult{}, err
		}
		if g.Outcome == domain.OutcomeWithdrawn {
			result.Player = current.Name()
			break
		}
		if err := s.view.ShowBoard(s.board, palette); err != nil {
			return RoundResult{}, err
		}
		if g.Outcome == domain.OutcomeWin {
			result.Player = current.Name()
		}
	}

	result.Outcome = g.Outcome
	result.Moves = g.MoveCount
	result.Duration = time.Since(started)

	switch result.Outcome {
	case domain.OutcomeWin:
		s.adjust(result.Player, 1)
	case domain.OutcomeWithdrawn:
		s.adjust(result.Player, -1)
	}

	logger.Info("round finished",
		"outcome", string(result.Outcome),
		"player", result.Player,
		"moves", result.Moves,
		"duration", result.Duration)

	if err := s.view.ShowResult(result); err != nil {
		return RoundResult{}, err
	}
	return result, nil
}

// takeTurn asks p until it produces a legal move or withdraws.
func (s *Session) takeTurn(ctx context.Context, g *domain.Game, p Player, logger *slog.Logger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		move, err := p.NextMove(ctx, g.Board)
		if err != nil {
			return err
		}
		if move.IsWithdrawal() {
			g.Withdraw()
			return nil
		}

		err = g.MakeMove(move)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrInvalidMove) {
			return err
		}

		logger.Debug("rejected move", "player", p.Name(), "row", move.Row, "column", move.Column)
		if err := s.view.IllegalMove(p); err != nil {
			return err
		}
	}
}

// Statistics lists every player seen so far in order of first appearance.
func (s *Session) Statistics() []Score {
	s.scoresMu.RLock()
	defer s.scoresMu.RUnlock()

	out := make([]Score, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Score{Name: name, Points: s.scores[name]})
	}
	return out
}

func (s *Session) register(name string) {
	s.scoresMu.Lock()
	defer s.scoresMu.Unlock()

	if _, ok := s.scores[name]; !ok {
		s.scores[name] = 0
		s.order = append(s.order, name)
	}
}

func (s *Session) adjust(name string, delta int) {
	s.scoresMu.Lock()
	defer s.scoresMu.Unlock()
	s.scores[name] += delta
}
