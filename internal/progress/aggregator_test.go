package progress

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/lontso23/dragon-fit/internal/domain"
)

func benchSource() domain.ProgressSource {
	return domain.ProgressSource{
		"w1": {
			WorkoutName:   "Push",
			SessionsCount: 2,
			Exercises: map[string][]domain.ProgressRecord{
				"0": {
					{Date: "2025-01-05", Weight: 80, ExerciseName: "Bench"},
					{Date: "2025-01-12", Weight: 82.5, ExerciseName: "Bench"},
				},
			},
		},
	}
}

func TestAggregate_BenchSeries(t *testing.T) {
	charts, err := Aggregate(benchSource(), DefaultChartLimit)
	require.NoError(t, err)
	require.Len(t, charts, 1)

	wc := charts[0]
	assert.Equal(t, "w1", wc.WorkoutID)
	assert.Equal(t, "Push", wc.WorkoutName)
	assert.Equal(t, 2, wc.SessionsCount)
	require.Len(t, wc.Series, 1)
	assert.Equal(t, "Bench", wc.Series[0].Name)
	assert.Equal(t, []Point{{Date: "01/05", Weight: 80}, {Date: "01/12", Weight: 82.5}}, wc.Series[0].Points)
}

func TestAggregate_KeepsSourceOrder(t *testing.T) {
	src := domain.ProgressSource{
		"w": {WorkoutName: "x", Exercises: map[string][]domain.ProgressRecord{
			"0": {
				{Date: "2025-02-01", Weight: 90},
				{Date: "2025-01-01", Weight: 70},
			},
		}},
	}
	charts, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)
	assert.Equal(t, "02/01", charts[0].Series[0].Points[0].Date)
	assert.Equal(t, "01/01", charts[0].Series[0].Points[1].Date)
}

func TestAggregate_EmptySlotName(t *testing.T) {
	src := domain.ProgressSource{
		"w": {WorkoutName: "x", Exercises: map[string][]domain.ProgressRecord{"0": {}}},
	}
	charts, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)
	assert.Equal(t, "Ejercicio 1", charts[0].Series[0].Name)
	assert.Empty(t, charts[0].Series[0].Points)
}

func TestAggregate_CapIsPresentationOnly(t *testing.T) {
	exercises := make(map[string][]domain.ProgressRecord)
	for i := 5; i >= 0; i-- {
		exercises[strconv.Itoa(i)] = []domain.ProgressRecord{{Date: "2025-01-01", Weight: float64(i), ExerciseName: "ex" + strconv.Itoa(i)}}
	}
	src := domain.ProgressSource{"w": {WorkoutName: "x", SessionsCount: 1, Exercises: exercises}}

	charts, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)
	require.Len(t, charts[0].Series, 4)
	assert.Equal(t, 2, charts[0].Hidden)
	for i, s := range charts[0].Series {
		assert.Equal(t, i, s.Slot)
	}
	assert.Len(t, src["w"].Exercises, 6)

	all, err := Aggregate(src, 0)
	require.NoError(t, err)
	assert.Len(t, all[0].Series, 6)
}

func TestAggregate_NumericSlotOrder(t *testing.T) {
	src := domain.ProgressSource{
		"w": {WorkoutName: "x", Exercises: map[string][]domain.ProgressRecord{
			"10": {}, "2": {}, "0": {},
		}},
	}
	charts, err := Aggregate(src, 0)
	require.NoError(t, err)
	var slots []int
	for _, s := range charts[0].Series {
		slots = append(slots, s.Slot)
	}
	assert.Equal(t, []int{0, 2, 10}, slots)
}

func TestAggregate_WorkoutOrderAndIdempotence(t *testing.T) {
	src := domain.ProgressSource{
		"b": {WorkoutName: "Pull", Exercises: map[string][]domain.ProgressRecord{}},
		"a": {WorkoutName: "Push", Exercises: map[string][]domain.ProgressRecord{}},
		"c": {WorkoutName: "Pull", Exercises: map[string][]domain.ProgressRecord{}},
	}
	first, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)
	second, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var ids []string
	for _, c := range first {
		ids = append(ids, c.WorkoutID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestAggregate_Empty(t *testing.T) {
	charts, err := Aggregate(domain.ProgressSource{}, DefaultChartLimit)
	require.NoError(t, err)
	assert.True(t, Empty(charts))
}

func TestAggregate_ShapeErrors(t *testing.T) {
	var shapeErr *domain.ShapeError

	_, err := Aggregate(domain.ProgressSource{
		"w": {Exercises: map[string][]domain.ProgressRecord{"first": {}}},
	}, 0)
	require.True(t, errors.As(err, &shapeErr))

	_, err = Aggregate(domain.ProgressSource{
		"w": {Exercises: map[string][]domain.ProgressRecord{"0": {{Date: "Jan 5"}}}},
	}, 0)
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "w.exercises.0[0].date", shapeErr.Path)
}

func TestAggregate_RejectsNonCanonicalSlotKeys(t *testing.T) {
	for _, key := range []string{"01", "+1", "-1"} {
		t.Run(key, func(t *testing.T) {
			_, err := Aggregate(domain.ProgressSource{
				"w": {Exercises: map[string][]domain.ProgressRecord{
					"1": {{Date: "2025-01-05", Weight: 80}},
					key: {{Date: "2025-01-06", Weight: 82}},
				}},
			}, 0)
			var shapeErr *domain.ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, "w.exercises", shapeErr.Path)
		})
	}
}

func TestDecode(t *testing.T) {
	body := `{"w1": {"workout_name": "Push", "sessions_count": 2, "exercises": {
		"0": [{"date": "2025-01-05", "weight": 80, "exercise_name": "Bench"},
		      {"date": "2025-01-12", "weight": 82.5, "exercise_name": "Bench", "reps": "8,8"}]}}}`

	src, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "Push", src["w1"].WorkoutName)
	assert.Equal(t, 2, src["w1"].SessionsCount)
	require.Len(t, src["w1"].Exercises["0"], 2)
	assert.Equal(t, 82.5, src["w1"].Exercises["0"][1].Weight)
	assert.Equal(t, "8,8", src["w1"].Exercises["0"][1].Reps)
}

// The REST progress endpoint sends records without exercise_name.
func TestDecode_UnnamedRecordsGetSlotLabel(t *testing.T) {
	body := `{"w1": {"workout_name": "Push", "sessions_count": 1, "exercises": {
		"0": [{"date": "2025-01-05", "weight": 80, "reps": "10"}],
		"2": [{"date": "2025-01-05", "weight": 20, "reps": "12", "exercise_name": "  "}]}}}`

	src, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	charts, err := Aggregate(src, DefaultChartLimit)
	require.NoError(t, err)

	require.Len(t, charts, 1)
	require.Len(t, charts[0].Series, 2)
	assert.Equal(t, "Ejercicio 1", charts[0].Series[0].Name)
	assert.Equal(t, "Ejercicio 3", charts[0].Series[1].Name)
	assert.Equal(t, []Point{{Date: "01/05", Weight: 80}}, charts[0].Series[0].Points)
}

func TestDecode_MissingKeys(t *testing.T) {
	body := `{"w1": {"sessions_count": 1, "exercises": {"0": [{"weight": 80}]}},
	          "w2": {"workout_name": "x", "sessions_count": 1}}`

	_, err := Decode(strings.NewReader(body))
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 3) // w1.workout_name, w1...date, w2.exercises
	for _, e := range errs {
		var shapeErr *domain.ShapeError
		assert.True(t, errors.As(e, &shapeErr))
	}
}

func TestDecode_NotJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("[]"))
	var shapeErr *domain.ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}
