package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/bot"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/console"
)

type options struct {
	configPath string
	width      int
	height     int
	winLength  int
	seed       int64
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "connect4",
		Short:        "Play Connect Four in the terminal, against a friend or the computer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file (default $CONFIG_PATH)")
	flags.IntVar(&opts.width, "width", domain.DefaultColumns, "number of columns")
	flags.IntVar(&opts.height, "height", domain.DefaultRows, "number of rows")
	flags.IntVar(&opts.winLength, "win-length", domain.DefaultWinLength, "discs in a line needed to win")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the computer's random moves (0 uses the clock)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	board, err := domain.NewBoard(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return err
	}
	rules, err := domain.NewRules(cfg.Board.WinLength)
	if err != nil {
		return err
	}
	if rules.WinLength() > max(board.Width(), board.Height()) {
		logger.Warn("win length exceeds both board dimensions, no one can win",
			"win_length", rules.WinLength(), "width", board.Width(), "height", board.Height())
	}

	var src rand.Source
	if cfg.Bot.Seed != 0 {
		src = rand.NewSource(cfg.Bot.Seed)
	}
	svc := game.NewService(rules, bot.NewSelector(src), cfg.Bot.Delay, logger)
	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), rules.WinLength())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = console.NewRunner(c, svc, board).Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = opts.height
	}
	if flags.Changed("win-length") {
		cfg.Board.WinLength = opts.winLength
	}
	if flags.Changed("seed") {
		cfg.Bot.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}
