package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/repository"
	"github.com/lontso23/dragon-fit/internal/sessionlog"
)

// SessionService covers the "log a training day" flow and session lookups.
type SessionService interface {
	// Start loads the workout and returns empty placeholders for one day.
	Start(ctx context.Context, workoutID string, dayIndex int) (sessionlog.Log, error)
	// Submit stores the log as a new session. The caller keeps its log on
	// failure and may submit it again.
	Submit(ctx context.Context, log sessionlog.Log) (*domain.Session, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// List returns sessions newest first; workoutID may be empty.
	List(ctx context.Context, workoutID string) ([]domain.Session, error)
}

type sessionService struct {
	workoutRepo repository.WorkoutRepository
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(workoutRepo repository.WorkoutRepository, sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		workoutRepo: workoutRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *sessionService) Start(ctx context.Context, workoutID string, dayIndex int) (sessionlog.Log, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return sessionlog.Log{}, notFound(err, ErrWorkoutNotFound, workoutID)
	}
	return sessionlog.New(*workout, dayIndex)
}

func (s *sessionService) Submit(ctx context.Context, log sessionlog.Log) (*domain.Session, error) {
	if log.Date != "" && !domain.IsISODate(log.Date) {
		return nil, &domain.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	session, err := s.sessionRepo.Create(ctx, log.Request())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workout_id": log.WorkoutID,
			"day_index":  log.DayIndex,
		}).WithError(err).Warn("session submit failed")
		return nil, fmt.Errorf("submit session: %w", notFound(err, ErrWorkoutNotFound, log.WorkoutID))
	}
	logrus.WithFields(logrus.Fields{
		"session_id": session.ID,
		"workout_id": session.WorkoutID,
		"date":       session.Date,
	}).Info("session logged")
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, ErrSessionNotFound, sessionID)
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, workoutID string) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.List(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
