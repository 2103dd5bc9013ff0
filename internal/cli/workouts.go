package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lontso23/dragon-fit/internal/editor"
)

func newWorkoutsCommand(ctx context.Context, svc Services) *cobra.Command {
	return &cobra.Command{
		Use:   "workouts",
		Short: "List your routines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := svc.Workouts.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(workouts) == 0 {
				fmt.Fprintln(out, "No workouts yet. Create one with: dragonfit workout create")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tNAME\tDAYS")
			for _, w := range workouts {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", w.ID, w.Name, len(w.Days))
			}
			return tw.Flush()
		},
	}
}

func newWorkoutCommand(ctx context.Context, svc Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Show, create, edit or delete a routine.",
	}
	cmd.AddCommand(
		newWorkoutShowCommand(ctx, svc),
		newWorkoutCreateCommand(ctx, svc),
		newWorkoutEditCommand(ctx, svc),
		newWorkoutDeleteCommand(ctx, svc),
	)
	return cmd
}

func newWorkoutShowCommand(ctx context.Context, svc Services) *cobra.Command {
	var withHistory bool

	cmd := &cobra.Command{
		Use:   "show <workout-id>",
		Short: "Print a routine day by day.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !withHistory {
				w, err := svc.Workouts.Get(ctx, args[0])
				if err != nil {
					return err
				}
				printWorkout(cmd, w)
				return nil
			}

			detail, err := svc.Progress.WorkoutDetail(ctx, args[0])
			if err != nil {
				return err
			}
			printWorkout(cmd, detail.Workout)
			fmt.Fprintln(cmd.OutOrStdout())
			return printHistory(cmd, detail.History)
		},
	}

	cmd.Flags().BoolVar(&withHistory, "history", false, "Also print the sessions logged for this routine")
	return cmd
}

func newWorkoutCreateCommand(ctx context.Context, svc Services) *cobra.Command {
	var (
		file        string
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a routine from a YAML file or from flags.",
		Long: "create stores a new routine. With -f the YAML file describes every day and exercise; " +
			"otherwise a single empty \"Día 1\" is created and can be filled with \"workout edit\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := editor.New()
			if file != "" {
				var err error
				if draft, err = loadRoutineFile(file); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("name") {
				draft = draft.SetName(name)
			}
			if cmd.Flags().Changed("description") {
				draft = draft.SetDescription(description)
			}

			w, err := svc.Workouts.Create(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML routine to import")
	cmd.Flags().StringVar(&name, "name", "", "Routine name (overrides the file)")
	cmd.Flags().StringVar(&description, "description", "", "Routine description (overrides the file)")
	return cmd
}

// editOptions are applied in a fixed order: metadata, additions, field
// updates, then removals (exercises before days) so that positions given on
// the command line refer to the routine as printed by "workout show".
type editOptions struct {
	file            string
	name            string
	description     string
	addDays         int
	renameDays      []string
	addExercises    []string
	setExercises    []string
	removeExercises []string
	removeDays      []string
}

func (o editOptions) apply(cmd *cobra.Command, draft editor.Draft) (editor.Draft, error) {
	var err error
	if cmd.Flags().Changed("name") {
		draft = draft.SetName(o.name)
	}
	if cmd.Flags().Changed("description") {
		draft = draft.SetDescription(o.description)
	}
	for i := 0; i < o.addDays; i++ {
		draft = draft.AddDay()
	}
	for _, a := range o.addExercises {
		day, perr := parsePosition(a)
		if perr != nil {
			return draft, perr
		}
		if draft, err = draft.AddExercise(day); err != nil {
			return draft, err
		}
	}
	for _, r := range o.renameDays {
		pos, newName, ok := splitRename(r)
		if !ok {
			return draft, fmt.Errorf("invalid rename %q (expected DAY=name)", r)
		}
		day, perr := parsePosition(pos)
		if perr != nil {
			return draft, perr
		}
		if draft, err = draft.RenameDay(day, newName); err != nil {
			return draft, err
		}
	}
	for _, s := range o.setExercises {
		path, field, value, perr := parseAssignment(s)
		if perr != nil {
			return draft, perr
		}
		day, ex, perr := parsePath(path)
		if perr != nil {
			return draft, perr
		}
		if draft, err = draft.UpdateExercise(day, ex, editor.Field(field), value); err != nil {
			return draft, err
		}
	}
	// Remove from the highest position down so earlier removals do not
	// shift the ones still to apply.
	type pos struct{ day, ex int }
	exercises := make([]pos, 0, len(o.removeExercises))
	for _, r := range o.removeExercises {
		day, ex, perr := parsePath(r)
		if perr != nil {
			return draft, perr
		}
		exercises = append(exercises, pos{day, ex})
	}
	sort.Slice(exercises, func(i, j int) bool {
		if exercises[i].day != exercises[j].day {
			return exercises[i].day > exercises[j].day
		}
		return exercises[i].ex > exercises[j].ex
	})
	for _, p := range exercises {
		if draft, err = draft.RemoveExercise(p.day, p.ex); err != nil {
			return draft, err
		}
	}

	days := make([]int, 0, len(o.removeDays))
	for _, r := range o.removeDays {
		day, perr := parsePosition(r)
		if perr != nil {
			return draft, perr
		}
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	for _, day := range days {
		if draft, err = draft.RemoveDay(day); err != nil {
			return draft, err
		}
	}
	return draft, nil
}

func splitRename(s string) (string, string, bool) {
	pos, name, ok := strings.Cut(s, "=")
	return pos, name, ok && pos != ""
}

func newWorkoutEditCommand(ctx context.Context, svc Services) *cobra.Command {
	var opts editOptions

	cmd := &cobra.Command{
		Use:   "edit <workout-id>",
		Short: "Change a routine.",
		Long: "edit loads the routine, applies the requested changes and saves the full result. " +
			"Positions are 1-based as printed by \"workout show\"; with -f the file replaces the whole routine.",
		Example: `  dragonfit workout edit workout_3f2a9c1b7d4e --add-exercise 1 --set 1.3.name="Face pull" --set 1.3.sets=3x15
  dragonfit workout edit workout_3f2a9c1b7d4e --rename-day "2=Pull 2" --remove-exercise 2.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				draft editor.Draft
				err   error
			)
			if opts.file != "" {
				draft, err = loadRoutineFile(opts.file)
			} else {
				draft, err = svc.Workouts.Edit(ctx, args[0])
			}
			if err != nil {
				return err
			}

			if draft, err = opts.apply(cmd, draft); err != nil {
				return err
			}

			w, err := svc.Workouts.Update(ctx, args[0], draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "YAML routine replacing the current content")
	f.StringVar(&opts.name, "name", "", "New routine name")
	f.StringVar(&opts.description, "description", "", "New routine description")
	f.IntVar(&opts.addDays, "add-day", 0, "Append this many empty days")
	f.StringArrayVar(&opts.renameDays, "rename-day", nil, "Rename a day: DAY=name")
	f.StringArrayVar(&opts.addExercises, "add-exercise", nil, "Append an empty exercise to DAY")
	f.StringArrayVar(&opts.setExercises, "set", nil, "Set an exercise field: DAY.EXERCISE.(name|sets|notes)=value")
	f.StringArrayVar(&opts.removeExercises, "remove-exercise", nil, "Remove exercise DAY.EXERCISE")
	f.StringArrayVar(&opts.removeDays, "remove-day", nil, "Remove DAY")
	return cmd
}

func newWorkoutDeleteCommand(ctx context.Context, svc Services) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <workout-id>",
		Short: "Delete a routine. Logged sessions are kept in the history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Workouts.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func loadRoutineFile(path string) (editor.Draft, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return editor.Draft{}, fmt.Errorf("routine file %s does not exist", path)
		}
		return editor.Draft{}, err
	}
	defer f.Close()
	return LoadRoutine(f)
}
