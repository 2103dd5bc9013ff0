package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/history"
	"github.com/lontso23/dragon-fit/internal/progress"
	"github.com/lontso23/dragon-fit/internal/repository"
)

// Workouts implements repository.WorkoutRepository over /api/workouts.
type Workouts struct {
	c *Client
}

// Sessions implements repository.SessionRepository over /api/sessions.
type Sessions struct {
	c *Client
}

var (
	_ repository.WorkoutRepository = (*Workouts)(nil)
	_ repository.SessionRepository = (*Sessions)(nil)
)

func (w *Workouts) Create(ctx context.Context, payload domain.WorkoutPayload) (*domain.Workout, error) {
	var out domain.Workout
	if err := w.c.do(ctx, http.MethodPost, "/api/workouts", nil, payload, jsonInto(&out, "workout")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *Workouts) GetByID(ctx context.Context, workoutID string) (*domain.Workout, error) {
	var out domain.Workout
	if err := w.c.do(ctx, http.MethodGet, "/api/workouts/"+url.PathEscape(workoutID), nil, nil, jsonInto(&out, "workout")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *Workouts) List(ctx context.Context) ([]domain.Workout, error) {
	out := []domain.Workout{}
	if err := w.c.do(ctx, http.MethodGet, "/api/workouts", nil, nil, jsonInto(&out, "workouts")); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *Workouts) Replace(ctx context.Context, workoutID string, payload domain.WorkoutPayload) (*domain.Workout, error) {
	var out domain.Workout
	if err := w.c.do(ctx, http.MethodPut, "/api/workouts/"+url.PathEscape(workoutID), nil, payload, jsonInto(&out, "workout")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *Workouts) Delete(ctx context.Context, workoutID string) error {
	return w.c.do(ctx, http.MethodDelete, "/api/workouts/"+url.PathEscape(workoutID), nil, nil, nil)
}

func (s *Sessions) Create(ctx context.Context, req domain.SessionRequest) (*domain.Session, error) {
	var out domain.Session
	if err := s.c.do(ctx, http.MethodPost, "/api/sessions", nil, req, jsonInto(&out, "session")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Sessions) GetByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	var out domain.Session
	if err := s.c.do(ctx, http.MethodGet, "/api/sessions/"+url.PathEscape(sessionID), nil, nil, jsonInto(&out, "session")); err != nil {
		return nil, err
	}
	return &out, nil
}

// List validates every item: a session without session_id, workout_id or
// date fails the whole call with a ShapeError.
func (s *Sessions) List(ctx context.Context, workoutID string) ([]domain.Session, error) {
	var params url.Values
	if workoutID != "" {
		params = url.Values{"workout_id": {workoutID}}
	}
	var out []domain.Session
	err := s.c.do(ctx, http.MethodGet, "/api/sessions", params, nil, func(r io.Reader) error {
		sessions, err := history.Decode(r)
		out = sessions
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Progress fetches the server-side aggregation and checks its shape.
func (c *Client) Progress(ctx context.Context) (domain.ProgressSource, error) {
	var out domain.ProgressSource
	err := c.do(ctx, http.MethodGet, "/api/progress", nil, nil, func(r io.Reader) error {
		source, err := progress.Decode(r)
		out = source
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
