package game

import (
	"context"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/bot"
)

// Player is one side of a round. NextMove may return domain.Withdrawal.
type Player interface {
	Name() string
	Color() string
	NextMove(ctx context.Context, board *domain.Board) (domain.Move, error)
}

// ColumnReader supplies a human's column choice (0-based). A column that
// could not be parsed should come back as -1.
type ColumnReader interface {
	ReadColumn(ctx context.Context, player string) (column int, withdraw bool, err error)
}

type Human struct {
	name  string
	color string
	in    ColumnReader
}

func NewHuman(name, color string, in ColumnReader) *Human {
	return &Human{name: name, color: color, in: in}
}

func (h *Human) Name() string  { return h.name }
func (h *Human) Color() string { return h.color }

// NextMove reads a column and lets the piece fall to the lowest free row.
func (h *Human) NextMove(ctx context.Context, board *domain.Board) (domain.Move, error) {
	column, withdraw, err := h.in.ReadColumn(ctx, h.name)
	if err != nil {
		return domain.InvalidMove, err
	}
	if withdraw {
		return domain.Withdrawal, nil
	}
	return domain.DropMove(board, column), nil
}

type Bot struct {
	name     string
	color    string
	own      domain.PlayerID
	selector *bot.Selector
	rules    *domain.Rules
	delay    time.Duration
}

func NewBot(name, color string, own domain.PlayerID, selector *bot.Selector, rules *domain.Rules, delay time.Duration) *Bot {
	return &Bot{
		name:     name,
		color:    color,
		own:      own,
		selector: selector,
		rules:    rules,
		delay:    delay,
	}
}

func (b *Bot) Name() string  { return b.name }
func (b *Bot) Color() string { return b.color }

func (b *Bot) NextMove(ctx context.Context, board *domain.Board) (domain.Move, error) {
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.InvalidMove, ctx.Err()
		case <-timer.C:
		}
	}
	return b.selector.SelectMove(board, b.rules, b.own, domain.Opponent(b.own))
}
