package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/oxono/internal/entity"
)

var (
	ErrInvalidBoardSize = errors.New("board-size must be an even number of at least 4")
	ErrInvalidBotColor  = errors.New("bot color must be PINK or BLACK")
	ErrInvalidLogLevel  = errors.New("log-level must be debug, info, warn or error")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"6"`
	HTTPPort  string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Bot       Bot    `yaml:"bot"`
	Redis     Redis  `yaml:"redis"`
}

type Bot struct {
	// Off unless set.
	Enabled bool   `yaml:"enabled" env:"BOT_ENABLED"`
	Color   string `yaml:"color" env:"BOT_COLOR" env-default:"BLACK"`
	// Seed of 0 draws a random one at startup.
	Seed int64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"oxono:changes"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < entity.MinBoardSize || that.BoardSize%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBoardSize, that.BoardSize)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if _, err := that.Bot.GetColor(); err != nil {
		return err
	}

	return nil
}

// GetColor returns the side the bot plays.
func (that *Bot) GetColor() (entity.Color, error) {
	color, err := entity.ParseColor(that.Color)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBotColor, err)
	}

	return color, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
