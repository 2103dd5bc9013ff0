// Package editor holds the in-memory routine editor used by both the create
// and edit flows. A Draft is a value: every transition returns a new Draft
// and leaves the receiver (and any Workout it was seeded from) untouched.
package editor

import (
	"strings"

	"github.com/lontso23/dragon-fit/internal/domain"
)

// Field selects which exercise attribute UpdateExercise writes.
type Field string

const (
	FieldName  Field = "name"
	FieldSets  Field = "sets"
	FieldNotes Field = "notes"
)

// Draft is the editable state of a routine before it is submitted.
type Draft struct {
	Name        string
	Description string
	Days        []domain.Day
}

// New returns the draft for the create flow: a single "Día 1" with no exercises.
func New() Draft {
	return Draft{
		Days: []domain.Day{newDay(1)},
	}
}

// FromWorkout seeds a draft for the edit flow from an existing workout.
func FromWorkout(w domain.Workout) Draft {
	return Draft{
		Name:        w.Name,
		Description: w.Description,
		Days:        domain.CloneDays(w.Days),
	}
}

func newDay(n int) domain.Day {
	return domain.Day{
		DayNumber: n,
		Name:      domain.DefaultDayName(n),
		Exercises: []domain.Exercise{},
	}
}

func (d Draft) clone() Draft {
	d.Days = domain.CloneDays(d.Days)
	return d
}

func (d Draft) checkDay(day int) error {
	if day < 0 || day >= len(d.Days) {
		return &domain.ReferenceError{Kind: "day", Index: day, Len: len(d.Days)}
	}
	return nil
}

func (d Draft) checkExercise(day, ex int) error {
	if err := d.checkDay(day); err != nil {
		return err
	}
	if n := len(d.Days[day].Exercises); ex < 0 || ex >= n {
		return &domain.ReferenceError{Kind: "exercise", Index: ex, Len: n}
	}
	return nil
}

// SetName replaces the routine name.
func (d Draft) SetName(name string) Draft {
	out := d.clone()
	out.Name = name
	return out
}

// SetDescription replaces the routine description.
func (d Draft) SetDescription(description string) Draft {
	out := d.clone()
	out.Description = description
	return out
}

// AddDay appends a new empty day named after its position.
func (d Draft) AddDay() Draft {
	out := d.clone()
	out.Days = append(out.Days, newDay(len(out.Days)+1))
	return out
}

// RenameDay replaces only the name of the given day.
func (d Draft) RenameDay(day int, name string) (Draft, error) {
	if err := d.checkDay(day); err != nil {
		return d, err
	}
	out := d.clone()
	out.Days[day].Name = name
	return out, nil
}

// RemoveDay deletes a day and renumbers the following ones.
// Sessions already logged against later days keep their old day_index.
func (d Draft) RemoveDay(day int) (Draft, error) {
	if err := d.checkDay(day); err != nil {
		return d, err
	}
	out := d.clone()
	out.Days = append(out.Days[:day], out.Days[day+1:]...)
	renumber(out.Days)
	return out, nil
}

// AddExercise appends an empty exercise row to the given day.
func (d Draft) AddExercise(day int) (Draft, error) {
	if err := d.checkDay(day); err != nil {
		return d, err
	}
	out := d.clone()
	out.Days[day].Exercises = append(out.Days[day].Exercises, domain.Exercise{})
	return out, nil
}

// UpdateExercise sets a single field of one exercise.
func (d Draft) UpdateExercise(day, ex int, field Field, value string) (Draft, error) {
	if err := d.checkExercise(day, ex); err != nil {
		return d, err
	}
	out := d.clone()
	target := &out.Days[day].Exercises[ex]
	switch field {
	case FieldName:
		target.Name = value
	case FieldSets:
		target.Sets = value
	case FieldNotes:
		target.Notes = value
	default:
		return d, &domain.ReferenceError{Kind: "exercise", Index: -1, Field: string(field)}
	}
	return out, nil
}

// RemoveExercise deletes one exercise; later exercises shift down by one.
func (d Draft) RemoveExercise(day, ex int) (Draft, error) {
	if err := d.checkExercise(day, ex); err != nil {
		return d, err
	}
	out := d.clone()
	exercises := out.Days[day].Exercises
	out.Days[day].Exercises = append(exercises[:ex], exercises[ex+1:]...)
	return out, nil
}

// Submit validates the draft and returns the payload to persist.
// Only the routine name is required; empty days and exercise rows are kept.
func (d Draft) Submit() (domain.WorkoutPayload, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.WorkoutPayload{}, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	days := domain.CloneDays(d.Days)
	if days == nil {
		days = []domain.Day{}
	}
	renumber(days)
	for i := range days {
		if days[i].Exercises == nil {
			days[i].Exercises = []domain.Exercise{}
		}
	}
	return domain.WorkoutPayload{
		Name:        d.Name,
		Description: d.Description,
		Days:        days,
	}, nil
}

func renumber(days []domain.Day) {
	for i := range days {
		days[i].DayNumber = i + 1
	}
}
