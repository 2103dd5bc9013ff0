package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/history"
	"github.com/lontso23/dragon-fit/internal/progress"
	"github.com/lontso23/dragon-fit/internal/repository"
	"github.com/lontso23/dragon-fit/internal/stats"
)

// WorkoutDetail is a workout together with its own session history.
type WorkoutDetail struct {
	Workout *domain.Workout
	History []history.DateGroup
}

// ProgressService builds the read-only views over the session history.
type ProgressService interface {
	// Charts aggregates the progress source into per-exercise series.
	Charts(ctx context.Context) ([]progress.WorkoutCharts, error)
	// History groups sessions by date, newest first; workoutID may be empty.
	History(ctx context.Context, workoutID string) ([]history.DateGroup, error)
	Stats(ctx context.Context, now time.Time) (stats.Summary, error)
	WorkoutDetail(ctx context.Context, workoutID string) (*WorkoutDetail, error)
}

type progressService struct {
	workoutRepo  repository.WorkoutRepository
	sessionRepo  repository.SessionRepository
	progressRepo repository.ProgressRepository
	chartLimit   int
}

// NewProgressService creates a new instance of progressService. chartLimit
// caps the series per workout; zero uses progress.DefaultChartLimit.
func NewProgressService(
	workoutRepo repository.WorkoutRepository,
	sessionRepo repository.SessionRepository,
	progressRepo repository.ProgressRepository,
	chartLimit int,
) ProgressService {
	if chartLimit == 0 {
		chartLimit = progress.DefaultChartLimit
	}
	return &progressService{
		workoutRepo:  workoutRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		chartLimit:   chartLimit,
	}
}

func (s *progressService) Charts(ctx context.Context) ([]progress.WorkoutCharts, error) {
	source, err := s.progressRepo.Progress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return progress.Aggregate(source, s.chartLimit)
}

func (s *progressService) History(ctx context.Context, workoutID string) ([]history.DateGroup, error) {
	sessions, err := s.sessionRepo.List(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history.Group(sessions), nil
}

// Stats prefers a summary computed by the backend and otherwise computes it
// from the workout and session lists, fetched in parallel.
func (s *progressService) Stats(ctx context.Context, now time.Time) (stats.Summary, error) {
	if remote, ok := s.progressRepo.(repository.StatsRepository); ok {
		return remote.Stats(ctx)
	}

	var (
		workouts []domain.Workout
		sessions []domain.Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workouts, err = s.workoutRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.sessionRepo.List(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.Summary{}, fmt.Errorf("load stats: %w", err)
	}
	return stats.Compute(len(workouts), sessions, now), nil
}

func (s *progressService) WorkoutDetail(ctx context.Context, workoutID string) (*WorkoutDetail, error) {
	var (
		workout  *domain.Workout
		sessions []domain.Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workout, err = s.workoutRepo.GetByID(gctx, workoutID)
		return notFound(err, ErrWorkoutNotFound, workoutID)
	})
	g.Go(func() error {
		var err error
		sessions, err = s.sessionRepo.List(gctx, workoutID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workout_id": workoutID,
		"sessions":   len(sessions),
	}).Debug("workout detail loaded")
	return &WorkoutDetail{Workout: workout, History: history.Group(sessions)}, nil
}
