// internal/repository/mongo/workout_repo.go
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
	"github.com/lontso23/dragon-fit/internal/repository"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository for one user.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
	userID     string
	now        func() time.Time
}

// NewMongoWorkoutRepository creates a Workout repository scoped to userID.
func NewMongoWorkoutRepository(db *mongo.Database, userID string) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
		userID:     userID,
		now:        utcNow,
	}
}

func (r *mongoWorkoutRepository) filter(workoutID string) bson.M {
	return bson.M{"workout_id": workoutID, "user_id": r.userID}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, payload domain.WorkoutPayload) (*domain.Workout, error) {
	if payload.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	workout := &domain.Workout{
		ID:          newID("workout"),
		UserID:      r.userID,
		Name:        payload.Name,
		Description: payload.Description,
		Days:        domain.CloneDays(payload.Days),
		CreatedAt:   r.now(),
	}
	if workout.Days == nil {
		workout.Days = []domain.Day{}
	}

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// GetByID retrieves a single workout by its public id.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, workoutID string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, r.filter(workoutID)).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// List retrieves the user's workouts, oldest first.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": r.userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Replace overwrites name, description and days and returns the stored result.
func (r *mongoWorkoutRepository) Replace(ctx context.Context, workoutID string, payload domain.WorkoutPayload) (*domain.Workout, error) {
	days := domain.CloneDays(payload.Days)
	if days == nil {
		days = []domain.Day{}
	}
	update := bson.M{
		"$set": bson.M{
			"name":        payload.Name,
			"description": payload.Description,
			"days":        days,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var workout domain.Workout
	err := r.collection.FindOneAndUpdate(ctx, r.filter(workoutID), update, opts).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout. Sessions logged against it are kept; their
// workout_id simply stops resolving.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, workoutID string) error {
	result, err := r.collection.DeleteOne(ctx, r.filter(workoutID))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workout_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.Warnf("failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
