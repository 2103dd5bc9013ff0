package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lontso23/dragon-fit/internal/service"
)

// Services is everything the commands need from the application layer.
type Services struct {
	Workouts service.WorkoutService
	Sessions service.SessionService
	Progress service.ProgressService
	// Now is the clock used for "this week"; defaults to time.Now.
	Now func() time.Time
}

// NewRootCommand creates the top-level Cobra command hosting every subcommand.
func NewRootCommand(ctx context.Context, svc Services) *cobra.Command {
	if svc.Now == nil {
		svc.Now = time.Now
	}

	cmd := &cobra.Command{
		Use:           "dragonfit",
		Short:         "Plan routines, log training days and follow your progress.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newWorkoutsCommand(ctx, svc),
		newWorkoutCommand(ctx, svc),
		newLogCommand(ctx, svc),
		newHistoryCommand(ctx, svc),
		newProgressCommand(ctx, svc),
		newStatsCommand(ctx, svc),
	)

	return cmd
}
