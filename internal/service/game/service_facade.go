package game

import (
	"log/slog"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/bot"
)

const (
	BotName  = "AI"
	BotColor = "red"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Rules    *domain.Rules
	Selector *bot.Selector
	BotDelay time.Duration
	Logger   *slog.Logger
}

func NewService(rules *domain.Rules, selector *bot.Selector, botDelay time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Rules:    rules,
		Selector: selector,
		BotDelay: botDelay,
		Logger:   logger,
	}
}

// NewBot returns the automated player. It always plays second.
func (s *Service) NewBot() *Bot {
	return NewBot(BotName, BotColor, domain.Player2, s.Selector, s.Rules, s.BotDelay)
}

func (s *Service) NewSession(board *domain.Board, view View) *Session {
	return NewSession(board, s.Rules, view, s.Logger)
}
