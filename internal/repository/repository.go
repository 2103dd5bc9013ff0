package repository

import (
	"context"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/stats"
)

//go:generate mockgen -source=$GOFILE -destination=../service/repository_mocks_test.go -package=service_test

// Error constants for repository layer
var (
	ErrNotFound    = RepositoryError("not found")
	ErrUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository stores the user's routines. Replace is a full replace of
// name, description and days.
type WorkoutRepository interface {
	Create(ctx context.Context, payload domain.WorkoutPayload) (*domain.Workout, error)
	GetByID(ctx context.Context, workoutID string) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Replace(ctx context.Context, workoutID string, payload domain.WorkoutPayload) (*domain.Workout, error)
	Delete(ctx context.Context, workoutID string) error
}

// SessionRepository stores logged sessions. Sessions are immutable once
// created, so there is no update.
type SessionRepository interface {
	Create(ctx context.Context, req domain.SessionRequest) (*domain.Session, error)
	GetByID(ctx context.Context, sessionID string) (*domain.Session, error)
	// List returns sessions newest first; an empty workoutID lists all of them.
	List(ctx context.Context, workoutID string) ([]domain.Session, error)
}

// ProgressRepository answers the progress aggregation query.
type ProgressRepository interface {
	Progress(ctx context.Context) (domain.ProgressSource, error)
}

// StatsRepository is implemented by backends that compute the dashboard
// summary themselves. Callers fall back to stats.Compute otherwise.
type StatsRepository interface {
	Stats(ctx context.Context) (stats.Summary, error)
}
