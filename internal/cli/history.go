package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lontso23/dragon-fit/internal/progress"
	"github.com/lontso23/dragon-fit/internal/stats"
)

func newHistoryCommand(ctx context.Context, svc Services) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged sessions grouped by day, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := svc.Progress.History(ctx, workoutID)
			if err != nil {
				return err
			}
			return printHistory(cmd, groups)
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Only sessions of this routine")
	return cmd
}

func newProgressCommand(ctx context.Context, svc Services) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the weight trend of each exercise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			charts, err := svc.Progress.Charts(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if progress.Empty(charts) {
				fmt.Fprintln(out, "No progress yet. Log a session to start tracking.")
				return nil
			}

			for i, wc := range charts {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%d sessions)\n", wc.WorkoutName, wc.SessionsCount)
				tw := newTable(out)
				for _, series := range wc.Series {
					fmt.Fprintf(tw, "  %s", orDash(series.Name))
					for _, p := range series.Points {
						fmt.Fprintf(tw, "\t%s %g", p.Date, p.Weight)
					}
					fmt.Fprintln(tw)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				if wc.Hidden > 0 {
					fmt.Fprintf(out, "  (+%d more exercises)\n", wc.Hidden)
				}
			}
			return nil
		},
	}
}

func newStatsCommand(ctx context.Context, svc Services) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the training summary.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := svc.Progress.Stats(ctx, svc.Now())
			if err != nil {
				return err
			}
			return printStats(cmd, summary)
		},
	}
}

func printStats(cmd *cobra.Command, s stats.Summary) error {
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintf(tw, "Workouts\t%d\n", s.TotalWorkouts)
	fmt.Fprintf(tw, "Sessions\t%d\n", s.TotalSessions)
	fmt.Fprintf(tw, "This week\t%d\n", s.SessionsThisWeek)
	fmt.Fprintf(tw, "Volume (kg)\t%.1f\n", s.TotalVolume)
	return tw.Flush()
}
