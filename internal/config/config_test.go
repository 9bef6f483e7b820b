package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4/internal/domain"
)

var configKeys = []string{"CONFIG_PATH", "BOARD_WIDTH", "BOARD_HEIGHT", "WIN_LENGTH", "BOT_DELAY", "BOT_SEED", "LOG_LEVEL"}

// clearEnv unsets keys for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultColumns, cfg.Board.Width)
	assert.Equal(t, domain.DefaultRows, cfg.Board.Height)
	assert.Equal(t, domain.DefaultWinLength, cfg.Board.WinLength)
	assert.Equal(t, time.Duration(0), cfg.Bot.Delay)
	assert.Equal(t, int64(0), cfg.Bot.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARD_WIDTH", "9")
	t.Setenv("BOARD_HEIGHT", "8")
	t.Setenv("WIN_LENGTH", "5")
	t.Setenv("BOT_DELAY", "250ms")
	t.Setenv("BOT_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Board.Width)
	assert.Equal(t, 8, cfg.Board.Height)
	assert.Equal(t, 5, cfg.Board.WinLength)
	assert.Equal(t, 250*time.Millisecond, cfg.Bot.Delay)
	assert.Equal(t, int64(42), cfg.Bot.Seed)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFromYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "connect4.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
board:
  width: 10
  height: 7
  win_length: 5
bot:
  delay: 1s
log:
  level: info
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 7, cfg.Board.Height)
	assert.Equal(t, 5, cfg.Board.WinLength)
	assert.Equal(t, time.Second, cfg.Bot.Delay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "connect4.yml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 5\n  height: 5\n  win_length: 3\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Width)
	assert.Equal(t, 3, cfg.Board.WinLength)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Board.Width, c.Board.Height, c.Board.WinLength = 7, 6, 4
		c.Log.Level = "warn"
		return c
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.Board.Width = 0 },
		"negative height": func(c *Config) { c.Board.Height = -1 },
		"zero win length": func(c *Config) { c.Board.WinLength = 0 },
		"negative delay":  func(c *Config) { c.Bot.Delay = -time.Second },
		"unknown level":   func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), domain.ErrInvalidConfig)
		})
	}
}

func TestValidateAllowsUnwinnableBoard(t *testing.T) {
	c := &Config{}
	c.Board.Width, c.Board.Height, c.Board.WinLength = 3, 3, 8
	c.Log.Level = "error"
	assert.NoError(t, c.Validate())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONNECT4_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("CONNECT4_TEST_VALUE", "fallback"))
	t.Setenv("CONNECT4_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CONNECT4_TEST_VALUE", "fallback"))
}
