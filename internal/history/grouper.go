// Package history groups logged sessions by calendar day for browsing.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"go.uber.org/multierr"

	"github.com/lontso23/dragon-fit/internal/domain"
)

// DateGroup is every session logged on one calendar day.
type DateGroup struct {
	Date     string           `json:"date"`
	Sessions []domain.Session `json:"sessions"`
}

// Group buckets sessions by exact date string and orders the buckets from
// the most recent day to the oldest. ISO dates sort lexicographically in
// date order, so no parsing is needed. Sessions keep their input order
// inside a bucket.
func Group(sessions []domain.Session) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, s := range sessions {
		i, ok := index[s.Date]
		if !ok {
			i = len(groups)
			index[s.Date] = i
			groups = append(groups, DateGroup{Date: s.Date})
		}
		groups[i].Sessions = append(groups[i].Sessions, s)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// DisplayDate renders a YYYY-MM-DD date as e.g. "domingo, 5 de enero de 2025".
func DisplayDate(date string) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", &domain.ShapeError{Path: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", date)}
	}
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year()), nil
}

type wireSession struct {
	ID          *string                 `json:"session_id"`
	WorkoutID   *string                 `json:"workout_id"`
	WorkoutName string                  `json:"workout_name"`
	DayIndex    int                     `json:"day_index"`
	DayName     string                  `json:"day_name"`
	Date        *string                 `json:"date"`
	Exercises   []domain.LoggedExercise `json:"exercises"`
}

// Decode reads a session list and rejects items without session_id,
// workout_id or date.
func Decode(r io.Reader) ([]domain.Session, error) {
	var raw []wireSession
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &domain.ShapeError{Path: "$", Reason: err.Error()}
	}

	var errs error
	sessions := make([]domain.Session, 0, len(raw))
	for i, w := range raw {
		path := fmt.Sprintf("[%d]", i)
		if w.ID == nil {
			errs = multierr.Append(errs, &domain.ShapeError{Path: path, Reason: `missing "session_id"`})
		}
		if w.WorkoutID == nil {
			errs = multierr.Append(errs, &domain.ShapeError{Path: path, Reason: `missing "workout_id"`})
		}
		if w.Date == nil {
			errs = multierr.Append(errs, &domain.ShapeError{Path: path, Reason: `missing "date"`})
		}
		if w.ID == nil || w.WorkoutID == nil || w.Date == nil {
			continue
		}
		sessions = append(sessions, domain.Session{
			ID:          *w.ID,
			WorkoutID:   *w.WorkoutID,
			WorkoutName: w.WorkoutName,
			DayIndex:    w.DayIndex,
			DayName:     w.DayName,
			Date:        *w.Date,
			Exercises:   w.Exercises,
		})
	}
	if errs != nil {
		return nil, errs
	}
	return sessions, nil
}
