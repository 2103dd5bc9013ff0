package history

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/lontso23/dragon-fit/internal/domain"
)

func TestGroup(t *testing.T) {
	sessions := []domain.Session{
		{ID: "a", Date: "2025-03-01"},
		{ID: "b", Date: "2025-02-20"},
		{ID: "c", Date: "2025-03-01"},
	}

	groups := Group(sessions)
	require.Len(t, groups, 2)
	assert.Equal(t, "2025-03-01", groups[0].Date)
	assert.Equal(t, "2025-02-20", groups[1].Date)
	require.Len(t, groups[0].Sessions, 2)
	assert.Equal(t, "a", groups[0].Sessions[0].ID)
	assert.Equal(t, "c", groups[0].Sessions[1].ID)

	assert.Equal(t, groups, Group(sessions))
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
}

func TestGroup_YearBoundary(t *testing.T) {
	groups := Group([]domain.Session{
		{ID: "old", Date: "2024-12-31"},
		{ID: "new", Date: "2025-01-01"},
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "2025-01-01", groups[0].Date)
}

func TestDisplayDate(t *testing.T) {
	got, err := DisplayDate("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, "domingo, 5 de enero de 2025", got)

	got, err = DisplayDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "sábado, 1 de marzo de 2025", got)

	_, err = DisplayDate("01/03/2025")
	var shapeErr *domain.ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}

func TestDecode(t *testing.T) {
	body := `[
		{"session_id": "s1", "workout_id": "w1", "date": "2025-03-01", "day_name": "Push 1",
		 "workout_name": "Push", "exercises": [{"exercise_index": 0, "exercise_name": "Bench", "weight": "80", "reps": "10", "notes": ""}]},
		{"session_id": "s2", "workout_id": "w1", "date": "2025-02-20"}
	]`
	sessions, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Bench", sessions[0].Exercises[0].ExerciseName)
	assert.Equal(t, "Push 1", sessions[0].DayName)
}

func TestDecode_MissingKeys(t *testing.T) {
	body := `[{"session_id": "s1", "workout_id": "w1"}, {"date": "2025-01-01"}]`
	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}
