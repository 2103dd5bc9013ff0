package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/editor"
	"github.com/lontso23/dragon-fit/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSessionNotFound = errors.New("session not found")
)

// notFound wraps err with sentinel when the store reported a missing record,
// keeping repository.ErrNotFound reachable through errors.Is.
func notFound(err, sentinel error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s: %w", sentinel, id, err)
	}
	return err
}

// WorkoutService covers the routine list, detail and editor flows.
type WorkoutService interface {
	// Create validates the draft and stores it as a new workout.
	Create(ctx context.Context, draft editor.Draft) (*domain.Workout, error)
	// Update replaces the stored workout with the draft's content.
	Update(ctx context.Context, workoutID string, draft editor.Draft) (*domain.Workout, error)
	Get(ctx context.Context, workoutID string) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Delete(ctx context.Context, workoutID string) error
	// Edit loads a workout and seeds an editor draft from it.
	Edit(ctx context.Context, workoutID string) (editor.Draft, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) Create(ctx context.Context, draft editor.Draft) (*domain.Workout, error) {
	payload, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"workout_id": workout.ID,
		"days":       len(workout.Days),
	}).Info("workout created")
	return workout, nil
}

func (s *workoutService) Update(ctx context.Context, workoutID string, draft editor.Draft) (*domain.Workout, error) {
	payload, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	workout, err := s.workoutRepo.Replace(ctx, workoutID, payload)
	if err != nil {
		return nil, notFound(err, ErrWorkoutNotFound, workoutID)
	}
	logrus.WithField("workout_id", workoutID).Info("workout updated")
	return workout, nil
}

func (s *workoutService) Get(ctx context.Context, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, notFound(err, ErrWorkoutNotFound, workoutID)
	}
	return workout, nil
}

func (s *workoutService) List(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Delete removes the workout only; sessions already logged against it stay
// in the history.
func (s *workoutService) Delete(ctx context.Context, workoutID string) error {
	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		return notFound(err, ErrWorkoutNotFound, workoutID)
	}
	logrus.WithField("workout_id", workoutID).Info("workout deleted")
	return nil
}

func (s *workoutService) Edit(ctx context.Context, workoutID string) (editor.Draft, error) {
	workout, err := s.Get(ctx, workoutID)
	if err != nil {
		return editor.Draft{}, err
	}
	return editor.FromWorkout(*workout), nil
}
