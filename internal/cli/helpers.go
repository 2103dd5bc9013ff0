package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lontso23/dragon-fit/internal/domain"
	"github.com/lontso23/dragon-fit/internal/history"
)

// Positions on the command line are 1-based, as printed by "workout show".

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q (expected a number from 1)", s)
	}
	return n - 1, nil
}

// parsePath parses "2.3" into zero-based (1, 2).
func parsePath(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, fmt.Errorf("invalid position %q (expected DAY.EXERCISE)", s)
	}
	day, err := parsePosition(a)
	if err != nil {
		return 0, 0, err
	}
	ex, err := parsePosition(b)
	if err != nil {
		return 0, 0, err
	}
	return day, ex, nil
}

// parseAssignment splits "KEY.FIELD=value" into its parts.
func parseAssignment(s string) (key, field, value string, err error) {
	lhs, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", "", fmt.Errorf("invalid assignment %q (expected KEY.FIELD=value)", s)
	}
	i := strings.LastIndex(lhs, ".")
	if i <= 0 {
		return "", "", "", fmt.Errorf("invalid assignment %q (expected KEY.FIELD=value)", s)
	}
	return lhs[:i], strings.ToLower(lhs[i+1:]), value, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func printWorkout(cmd *cobra.Command, w *domain.Workout) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", w.Name, w.ID)
	if w.Description != "" {
		fmt.Fprintln(out, w.Description)
	}
	for i, day := range w.Days {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, day.Name)
		if len(day.Exercises) == 0 {
			fmt.Fprintln(out, "   (no exercises)")
			continue
		}
		tw := newTable(out)
		for j, ex := range day.Exercises {
			fmt.Fprintf(tw, "   %d.%d\t%s\t%s\t%s\n", i+1, j+1, orDash(ex.Name), orDash(ex.Sets), ex.Notes)
		}
		_ = tw.Flush()
	}
}

func printSession(out io.Writer, s domain.Session) {
	fmt.Fprintf(out, "  %s · %s (%s)\n", s.WorkoutName, s.DayName, s.ID)
	tw := newTable(out)
	for _, ex := range s.Exercises {
		name := ex.ExerciseName
		if strings.TrimSpace(name) == "" {
			name = domain.DefaultExerciseLabel(ex.ExerciseIndex)
		}
		fmt.Fprintf(tw, "    %s\t%s\t%s\t%s\n", name, orDash(ex.Weight), orDash(ex.Reps), ex.Notes)
	}
	_ = tw.Flush()
}

func printHistory(cmd *cobra.Command, groups []history.DateGroup) error {
	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, "No sessions logged yet")
		return nil
	}
	for i, g := range groups {
		label, err := history.DisplayDate(g.Date)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, label)
		for _, s := range g.Sessions {
			printSession(out, s)
		}
	}
	return nil
}
