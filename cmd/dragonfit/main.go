package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lontso23/dragon-fit/internal/apiclient"
	"github.com/lontso23/dragon-fit/internal/cli"
	"github.com/lontso23/dragon-fit/internal/config"
	"github.com/lontso23/dragon-fit/internal/logging"
	"github.com/lontso23/dragon-fit/internal/repository"
	"github.com/lontso23/dragon-fit/internal/repository/mongo"
	"github.com/lontso23/dragon-fit/internal/service"
)

type backend struct {
	workouts repository.WorkoutRepository
	sessions repository.SessionRepository
	progress repository.ProgressRepository
	close    func()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfgPath := os.Getenv("DRAGONFIT_CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "."
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	logging.Setup(logging.SetupParams{
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.JSON,
	})
	logrus.WithField("backend", cfg.Backend).Debug("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Repositories ---
	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()

	// --- Services ---
	svc := cli.Services{
		Workouts: service.NewWorkoutService(b.workouts),
		Sessions: service.NewSessionService(b.workouts, b.sessions),
		Progress: service.NewProgressService(b.workouts, b.sessions, b.progress, 0),
	}

	return cli.NewRootCommand(ctx, svc).ExecuteContext(ctx)
}

func openBackend(ctx context.Context, cfg config.Config) (*backend, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, fmt.Errorf("could not connect to MongoDB: %w", err)
		}
		appDB := dbClient.Database(cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		mongo.EnsureIndexes(indexCtx, appDB)
		cancel()

		workouts := mongo.NewMongoWorkoutRepository(appDB, cfg.Database.UserID)
		sessions := mongo.NewMongoSessionRepository(appDB, cfg.Database.UserID, workouts)
		return &backend{
			workouts: workouts,
			sessions: sessions,
			progress: sessions,
			close: func() {
				if err := mongo.DisconnectDB(dbClient); err != nil {
					logrus.Errorf("failed to disconnect MongoDB: %v", err)
				}
			},
		}, nil

	default:
		client := apiclient.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
		return &backend{
			workouts: client.Workouts(),
			sessions: client.Sessions(),
			progress: client,
			close:    func() {},
		}, nil
	}
}
