package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/iamasit07/connect4/internal/domain"
)

type Config struct {
	Board struct {
		Width     int `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
		Height    int `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
		WinLength int `yaml:"win_length" env:"WIN_LENGTH" env-default:"4"`
	} `yaml:"board"`

	Bot struct {
		Delay time.Duration `yaml:"delay" env:"BOT_DELAY" env-default:"0s"`
		// 0 seeds from the clock
		Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
	} `yaml:"bot"`

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"warn"`
	} `yaml:"log"`
}

var AppConfig *Config

// Load reads .env if present, then a YAML file when path (or CONFIG_PATH)
// is set, otherwise plain environment variables. Env vars win over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = GetEnv("CONFIG_PATH", "")
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return AppConfig, nil
}

// Validate fails fast on values the board and rules cannot be built from.
// A win length longer than the board is allowed; it just can't be won.
func (c *Config) Validate() error {
	if c.Board.Width <= 0 {
		return fmt.Errorf("board.width must be positive, got %d: %w", c.Board.Width, domain.ErrInvalidConfig)
	}
	if c.Board.Height <= 0 {
		return fmt.Errorf("board.height must be positive, got %d: %w", c.Board.Height, domain.ErrInvalidConfig)
	}
	if c.Board.WinLength <= 0 {
		return fmt.Errorf("board.win_length must be positive, got %d: %w", c.Board.WinLength, domain.ErrInvalidConfig)
	}
	if c.Bot.Delay < 0 {
		return fmt.Errorf("bot.delay must not be negative, got %s: %w", c.Bot.Delay, domain.ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("log.level %q is not one of debug, info, warn, error: %w", c.Log.Level, domain.ErrInvalidConfig)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
