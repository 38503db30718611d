package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/oxono/internal/config"
	"github.com/rocketscienceinc/oxono/internal/entity"
	"github.com/rocketscienceinc/oxono/internal/oxono"
	"github.com/rocketscienceinc/oxono/internal/random"
	"github.com/rocketscienceinc/oxono/internal/repository/storage"
	"github.com/rocketscienceinc/oxono/internal/service"
	"github.com/rocketscienceinc/oxono/internal/transport/console"
	"github.com/rocketscienceinc/oxono/internal/transport/redis"
	"github.com/rocketscienceinc/oxono/internal/usecase"
	"github.com/rocketscienceinc/oxono/transport/rest"
	"github.com/rocketscienceinc/oxono/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	game, err := oxono.New(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	manager, err := newGameManager(logger, conf, game)
	if err != nil {
		return err
	}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher := redis.NewPublisher(logger, redisStorage.Connection, conf.Redis.Channel)
		go publisher.Run(ctx)

		unsubscribe := manager.Subscribe(publisher)
		defer unsubscribe()
	}

	watchers := websocket.New(logger, manager)
	defer manager.Subscribe(watchers)()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, manager, watchers)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- console.New(logger, manager, os.Stdin, os.Stdout).Run(ctx)
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Game over", "outcome", manager.Outcome().Status)
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newGameManager(logger *slog.Logger, conf *config.Config, game *oxono.Game) (*usecase.GameManager, error) {
	if !conf.Bot.Enabled {
		return usecase.NewGameManager(logger, game, nil, entity.Black), nil
	}

	color, err := conf.Bot.GetColor()
	if err != nil {
		return nil, err
	}

	rng, seed, err := random.NewSource(conf.Bot.Seed)
	if err != nil {
		return nil, fmt.Errorf("could not seed bot: %w", err)
	}

	logger.Info("Bot enabled", "color", color.String(), "seed", seed)

	return usecase.NewGameManager(logger, game, service.NewBotService(rng), color), nil
}
