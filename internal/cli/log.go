package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lontso23/dragon-fit/internal/sessionlog"
)

func newLogCommand(ctx context.Context, svc Services) *cobra.Command {
	var (
		day     int
		date    string
		entries []string
	)

	cmd := &cobra.Command{
		Use:   "log <workout-id>",
		Short: "Log a training day.",
		Long: "log records one session of the chosen day. Every exercise of the day is stored; " +
			"fields not given with --set are left empty. Exercise positions are 1-based.",
		Example: `  dragonfit log workout_3f2a9c1b7d4e --day 1 --set 1.weight=80kg --set 1.reps=10,10,8 --set 2.weight=20`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if day < 1 {
				return fmt.Errorf("invalid --day %d (expected a number from 1)", day)
			}
			log, err := svc.Sessions.Start(ctx, args[0], day-1)
			if err != nil {
				return err
			}

			for _, e := range entries {
				key, field, value, err := parseAssignment(e)
				if err != nil {
					return err
				}
				index, err := parsePosition(key)
				if err != nil {
					return err
				}
				if log, err = log.Set(index, sessionlog.Field(field), value); err != nil {
					return err
				}
			}
			if date != "" {
				log = log.WithDate(date)
			}

			session, err := svc.Sessions.Submit(ctx, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged %s on %s\n", session.DayName, session.Date)
			printSession(out, *session)
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 1, "Day of the routine (1-based)")
	cmd.Flags().StringVar(&date, "date", "", "Session date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringArrayVar(&entries, "set", nil, "Exercise value: EXERCISE.(weight|reps|notes)=value")
	return cmd
}
