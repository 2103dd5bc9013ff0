// internal/domain/exercise.go
package domain

import "fmt"

// Exercise is a planned movement inside a Day. Name may be empty while the
// routine is being edited; such draft rows are persisted as-is.
type Exercise struct {
	Name  string `bson:"name" json:"name"`
	Sets  string `bson:"sets" json:"sets"`   // free-form target, e.g. "3x10-12"
	Notes string `bson:"notes" json:"notes"` // optional cues
}

// DefaultExerciseLabel is the label shown for an exercise slot (0-based) when
// no logged name is available.
func DefaultExerciseLabel(slot int) string {
	return fmt.Sprintf("Ejercicio %d", slot+1)
}
