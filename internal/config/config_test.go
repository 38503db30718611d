package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/oxono/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: every other field has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 6, conf.BoardSize)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.False(t, conf.Bot.Enabled)
		assert.Equal(t, "BLACK", conf.Bot.Color)
		assert.Equal(t, int64(0), conf.Bot.Seed)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "oxono:changes", conf.Redis.Channel)
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
board-size: 8
bot:
  enabled: true
  color: pink
  seed: 42
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8, conf.BoardSize)
		assert.True(t, conf.Bot.Enabled)
		assert.Equal(t, int64(42), conf.Bot.Seed)
		color, err := conf.Bot.GetColor()
		require.NoError(t, err)
		assert.Equal(t, entity.Pink, color)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env variable for the same field
		path := writeConfig(t, "board-size: 8\n")
		t.Setenv("BOARD_SIZE", "10")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 10, conf.BoardSize)
	})

	t.Run("Invalid values", func(t *testing.T) {
		cases := map[string]error{
			"board-size: 5\n":       ErrInvalidBoardSize,
			"board-size: 2\n":       ErrInvalidBoardSize,
			"bot:\n  color: BLUE\n": ErrInvalidBotColor,
			"log-level: verbose\n":  ErrInvalidLogLevel,
		}

		for content, want := range cases {
			_, err := Load(writeConfig(t, content))

			require.ErrorIs(t, err, want, content)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
