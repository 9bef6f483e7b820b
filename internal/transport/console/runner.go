package console

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/pkg/uid"
)

// Runner drives the interactive loop: pick players, play a round, show the
// tallies, offer a replay.
type Runner struct {
	console *Console
	service *game.Service
	session *game.Session
	logger  *slog.Logger
}

func NewRunner(c *Console, svc *game.Service, board *domain.Board) *Runner {
	return &Runner{
		console: c,
		service: svc,
		session: svc.NewSession(board, c),
		logger:  svc.Logger,
	}
}

// Run returns nil when the players stop or input runs out.
func (r *Runner) Run(ctx context.Context) error {
	sessionID, err := uid.GenerateSessionID()
	if err != nil {
		return err
	}
	logger := r.logger.With("session_id", sessionID)
	logger.Info("console session started")

	if err := r.console.Instructions(); err != nil {
		return err
	}

	for {
		first, second, err := r.createPlayers()
		if err != nil {
			return endOfInput(err)
		}

		if _, err := r.session.PlayRound(ctx, first, second); err != nil {
			return endOfInput(err)
		}

		if err := r.console.ShowStatistics(r.session.Statistics()); err != nil {
			return err
		}

		again, err := r.console.AskReplay()
		if err != nil {
			return endOfInput(err)
		}
		if !again {
			logger.Info("console session finished")
			return nil
		}
	}
}

func (r *Runner) Statistics() []game.Score {
	return r.session.Statistics()
}

func (r *Runner) createPlayers() (game.Player, game.Player, error) {
	mode, err := r.console.AskMode()
	if err != nil {
		return nil, nil, err
	}

	first, err := r.createHuman("first", "")
	if err != nil {
		return nil, nil, err
	}
	if mode == 1 {
		return first, r.service.NewBot(), nil
	}

	second, err := r.createHuman("second", first.Color())
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func (r *Runner) createHuman(order, excludeColor string) (*game.Human, error) {
	name, err := r.console.AskName(order)
	if err != nil {
		return nil, err
	}
	color, err := r.console.AskColor(order, excludeColor)
	if err != nil {
		return nil, err
	}
	return game.NewHuman(name, color, r.console), nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
