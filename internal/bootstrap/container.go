package bootstrap

import (
	"context"
	"fmt"

	"grimoire-scribe/internal/config"
	"grimoire-scribe/internal/controller"
	"grimoire-scribe/internal/pkg/logger"
	"grimoire-scribe/internal/repository/contract"
	"grimoire-scribe/internal/repository/memory"
	redisrepo "grimoire-scribe/internal/repository/redis"
	"grimoire-scribe/internal/service"
)

// Container owns every process-scoped dependency. Tests build their own
// container instead of sharing module-level state.
type Container struct {
	Logger logger.ILogger

	NoteRepository contract.NoteRepository
	NoteService    service.INoteService
	NoteController controller.INoteController
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	return newContainer(ctx, cfg, sysLogger)
}

// NewTestContainer wires an in-memory container with a silent logger.
func NewTestContainer() *Container {
	c, _ := newContainer(context.Background(), &config.Config{
		Storage: config.StorageConfig{Driver: "memory"},
	}, logger.NewNopLogger())
	return c
}

func newContainer(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Storage Backend
	var noteRepo contract.NoteRepository
	switch cfg.Storage.Driver {
	case "", "memory":
		noteRepo = memory.NewNoteRepository()
		sysLogger.Info("bootstrap", "Using storage driver: memory", nil)
	case "redis":
		client, err := redisrepo.NewClient(ctx, cfg.Storage.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		noteRepo = redisrepo.NewNoteRepository(client)
		sysLogger.Info("bootstrap", "Using storage driver: redis", map[string]interface{}{
			"url": cfg.Storage.RedisURL,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	// 2. Services
	noteService := service.NewNoteService(noteRepo)

	// 3. Controllers
	noteController := controller.NewNoteController(noteService)

	return &Container{
		Logger:         sysLogger,
		NoteRepository: noteRepo,
		NoteService:    noteService,
		NoteController: noteController,
	}, nil
}
