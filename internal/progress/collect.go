package progress

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lontso23/dragon-fit/internal/domain"
)

// Collect groups a flat session history into the progress source shape:
// sessions are walked in ascending date order (stable for equal dates),
// grouped by workout and then by the exercise_index recorded in each entry.
func Collect(sessions []domain.Session) domain.ProgressSource {
	ordered := make([]domain.Session, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	source := make(domain.ProgressSource)
	for _, s := range ordered {
		wp, ok := source[s.WorkoutID]
		if !ok {
			wp = domain.WorkoutProgress{
				WorkoutName: s.WorkoutName,
				Exercises:   make(map[string][]domain.ProgressRecord),
			}
		}
		wp.SessionsCount++
		for _, ex := range s.Exercises {
			key := strconv.Itoa(ex.ExerciseIndex)
			wp.Exercises[key] = append(wp.Exercises[key], domain.ProgressRecord{
				Date:         s.Date,
				Weight:       ParseWeight(ex.Weight),
				ExerciseName: ex.ExerciseName,
				Reps:         ex.Reps,
			})
		}
		source[s.WorkoutID] = wp
	}
	return source
}

// ParseWeight extracts the leading magnitude of a free-text weight such as
// "80kg", "12,5" or "20x3". Unparseable or empty input yields 0.
func ParseWeight(s string) float64 {
	s = strings.ReplaceAll(s, "kg", "")
	s = strings.ReplaceAll(s, ",", ".")
	s, _, _ = strings.Cut(s, "x")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
