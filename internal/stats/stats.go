// Package stats computes the dashboard summary over a user's history.
package stats

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/progress"
)

// Summary is the dashboard header.
type Summary struct {
	TotalWorkouts    int     `json:"total_workouts"`
	TotalSessions    int     `json:"total_sessions"`
	SessionsThisWeek int     `json:"sessions_this_week"`
	TotalVolume      float64 `json:"total_volume"`
}

// Compute summarises sessions. The week starts on Monday (UTC) of now; the
// volume is weight times the sum of the per-set reps, rounded to 0.1.
func Compute(workoutCount int, sessions []domain.Session, now time.Time) Summary {
	weekStart := WeekStart(now).Format(domain.DateLayout)

	s := Summary{
		TotalWorkouts: workoutCount,
		TotalSessions: len(sessions),
	}
	var volume float64
	for _, session := range sessions {
		if session.Date >= weekStart {
			s.SessionsThisWeek++
		}
		for _, ex := range session.Exercises {
			volume += progress.ParseWeight(ex.Weight) * float64(TotalReps(ex.Reps))
		}
	}
	s.TotalVolume = math.Round(volume*10) / 10
	return s
}

// WeekStart returns midnight UTC of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TotalReps sums a comma separated reps list such as "10,10,8".
// Parts that are not plain digits are ignored.
func TotalReps(reps string) int {
	total := 0
	for _, part := range strings.Split(reps, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}
