package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lontso23/dragon-fit/internal/editor"
)

// routineFile is the YAML layout accepted by "workout create -f":
//
//	name: Push Pull Legs
//	description: 3 days
//	days:
//	  - name: Push 1
//	    exercises:
//	      - name: Bench press
//	        sets: 4x8
//	        notes: pause on chest
type routineFile struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Days        []routineDay `yaml:"days"`
}

type routineDay struct {
	Name      string            `yaml:"name"`
	Exercises []routineExercise `yaml:"exercises"`
}

type routineExercise struct {
	Name  string `yaml:"name"`
	Sets  string `yaml:"sets"`
	Notes string `yaml:"notes"`
}

// LoadRoutine reads a YAML routine and replays it through the editor
// transitions, so the result is exactly what the interactive flow would
// build. Days without a name keep the default "Día N".
func LoadRoutine(r io.Reader) (editor.Draft, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file routineFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return editor.Draft{}, errors.New("routine file is empty")
		}
		return editor.Draft{}, fmt.Errorf("parse routine: %w", err)
	}

	draft := editor.New().SetName(file.Name).SetDescription(file.Description)
	for i, day := range file.Days {
		var err error
		if i > 0 {
			draft = draft.AddDay()
		}
		if day.Name != "" {
			if draft, err = draft.RenameDay(i, day.Name); err != nil {
				return editor.Draft{}, err
			}
		}
		for j, ex := range day.Exercises {
			if draft, err = draft.AddExercise(i); err != nil {
				return editor.Draft{}, err
			}
			for _, set := range []struct {
				field editor.Field
				value string
			}{
				{editor.FieldName, ex.Name},
				{editor.FieldSets, ex.Sets},
				{editor.FieldNotes, ex.Notes},
			} {
				if draft, err = draft.UpdateExercise(i, j, set.field, set.value); err != nil {
					return editor.Draft{}, err
				}
			}
		}
	}
	return draft, nil
}
