// internal/repository/mongo/session_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/progress"
	"github.com/lontso23/dragon-fit/internal/repository"
)

const sessionCollectionName = "training_sessions"

// SessionRepository implements repository.SessionRepository and
// repository.ProgressRepository for one user.
type SessionRepository struct {
	collection *mongo.Collection
	workouts   repository.WorkoutRepository
	userID     string
	now        func() time.Time
}

// NewMongoSessionRepository creates a Session repository scoped to userID.
// workouts is used to resolve the routine a new session is logged against.
func NewMongoSessionRepository(db *mongo.Database, userID string, workouts repository.WorkoutRepository) *SessionRepository {
	return &SessionRepository{
		collection: db.Collection(sessionCollectionName),
		workouts:   workouts,
		userID:     userID,
		now:        utcNow,
	}
}

var (
	_ repository.SessionRepository  = (*SessionRepository)(nil)
	_ repository.ProgressRepository = (*SessionRepository)(nil)
)

// Create stores a session, snapshotting the workout, day and exercise names
// as they are right now. The date defaults to today (UTC).
func (r *SessionRepository) Create(ctx context.Context, req domain.SessionRequest) (*domain.Session, error) {
	workout, err := r.workouts.GetByID(ctx, req.WorkoutID)
	if err != nil {
		return nil, err
	}

	now := r.now()
	session, err := domain.NewSession(newID("session"), r.userID, *workout, req, now.Format(domain.DateLayout), now)
	if err != nil {
		return nil, err
	}

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetByID retrieves a single session.
func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	filter := bson.M{"session_id": sessionID, "user_id": r.userID}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// List retrieves sessions newest first, optionally for one workout.
func (r *SessionRepository) List(ctx context.Context, workoutID string) ([]domain.Session, error) {
	filter := bson.M{"user_id": r.userID}
	if workoutID != "" {
		filter["workout_id"] = workoutID
	}
	return r.find(ctx, filter, -1)
}

// Progress groups the user's whole history into the per-slot progress shape.
func (r *SessionRepository) Progress(ctx context.Context) (domain.ProgressSource, error) {
	sessions, err := r.find(ctx, bson.M{"user_id": r.userID}, 1)
	if err != nil {
		return nil, err
	}
	return progress.Collect(sessions), nil
}

func (r *SessionRepository) find(ctx context.Context, filter bson.M, order int) ([]domain.Session, error) {
	sessions := []domain.Session{}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: order},
		{Key: "created_at", Value: order},
	})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// history and progress queries
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "workout_id", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
