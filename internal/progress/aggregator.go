// Package progress turns logged session history into per-exercise chart
// series. Everything here is a pure function over already fetched data.
package progress

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lontso23/dragon-fit/internal/domain"
)

// DefaultChartLimit is how many exercise charts are rendered per workout.
const DefaultChartLimit = 4

// Point is one chart sample.
type Point struct {
	Date   string  `json:"date"` // MM/DD
	Weight float64 `json:"weight"`
}

// Series is the weight trend of one exercise slot.
type Series struct {
	Slot   int     `json:"slot"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// WorkoutCharts holds the rendered series of one workout. Hidden counts the
// slots that exist in the source but were left out by the chart limit.
type WorkoutCharts struct {
	WorkoutID     string   `json:"workout_id"`
	WorkoutName   string   `json:"workout_name"`
	SessionsCount int      `json:"sessions_count"`
	Series        []Series `json:"series"`
	Hidden        int      `json:"hidden"`
}

// Aggregate builds chart series for every workout in source. At most limit
// series are produced per workout (limit <= 0 means no cap). Points keep the
// order of the source records; source itself is never modified.
func Aggregate(source domain.ProgressSource, limit int) ([]WorkoutCharts, error) {
	ids := make([]string, 0, len(source))
	for id := range source {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := source[ids[i]], source[ids[j]]
		if a.WorkoutName != b.WorkoutName {
			return a.WorkoutName < b.WorkoutName
		}
		return ids[i] < ids[j]
	})

	charts := make([]WorkoutCharts, 0, len(ids))
	for _, id := range ids {
		wp := source[id]
		slots, err := sortedSlots(id, wp.Exercises)
		if err != nil {
			return nil, err
		}

		shown := slots
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}

		wc := WorkoutCharts{
			WorkoutID:     id,
			WorkoutName:   wp.WorkoutName,
			SessionsCount: wp.SessionsCount,
			Series:        make([]Series, 0, len(shown)),
			Hidden:        len(slots) - len(shown),
		}
		for _, s := range shown {
			series, err := buildSeries(id, s.index, wp.Exercises[s.key])
			if err != nil {
				return nil, err
			}
			wc.Series = append(wc.Series, series)
		}
		charts = append(charts, wc)
	}
	return charts, nil
}

// Empty reports whether there is nothing to chart.
func Empty(charts []WorkoutCharts) bool {
	return len(charts) == 0
}

type slot struct {
	key   string
	index int
}

func sortedSlots(workoutID string, exercises map[string][]domain.ProgressRecord) ([]slot, error) {
	slots := make([]slot, 0, len(exercises))
	for key := range exercises {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || strconv.Itoa(idx) != key {
			return nil, &domain.ShapeError{
				Path:   fmt.Sprintf("%s.exercises", workoutID),
				Reason: fmt.Sprintf("slot key %q is not an exercise index", key),
			}
		}
		slots = append(slots, slot{key: key, index: idx})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].index < slots[j].index })
	return slots, nil
}

func buildSeries(workoutID string, index int, records []domain.ProgressRecord) (Series, error) {
	series := Series{
		Slot:   index,
		Name:   DisplayName(index, records),
		Points: make([]Point, 0, len(records)),
	}
	for i, r := range records {
		label, err := monthDay(r.Date)
		if err != nil {
			return Series{}, &domain.ShapeError{
				Path:   fmt.Sprintf("%s.exercises.%d[%d].date", workoutID, index, i),
				Reason: err.Error(),
			}
		}
		series.Points = append(series.Points, Point{Date: label, Weight: r.Weight})
	}
	return series, nil
}

// DisplayName is the exercise name of the first record of a slot, or the
// synthetic "Ejercicio N" label when the slot has no records or the records
// carry no name (the REST progress endpoint omits it).
func DisplayName(slot int, records []domain.ProgressRecord) string {
	if len(records) == 0 || strings.TrimSpace(records[0].ExerciseName) == "" {
		return domain.DefaultExerciseLabel(slot)
	}
	return records[0].ExerciseName
}

func monthDay(date string) (string, error) {
	if !domain.IsISODate(date) {
		return "", fmt.Errorf("%q is not a YYYY-MM-DD date", date)
	}
	return date[5:7] + "/" + date[8:10], nil
}
