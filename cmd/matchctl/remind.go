package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/feedback"
	"github.com/oggyb/interview-match/internal/logger"
)

var dryRun bool

var remindCmd = &cobra.Command{
	Use:   "remind [user-id]",
	Short: "Publish feedback reminders for stale accepted matches, or list one user's reminders",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appCtx, closer, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		now := appCtx.Days.Now()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			userID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("user id must be numeric: %w", err)
			}
			reminders, err := appCtx.Feedback.Reminders(ctx, userID, now)
			if err != nil {
				return err
			}
			for _, r := range reminders {
				fmt.Fprintf(out, "match %d\t%s\t%d days\t%s\n", r.MatchID, r.PartnerDisplayName, r.DaysSinceMatch, r.ContactStatus)
			}
			return nil
		}

		tracker := appCtx.Feedback
		var mem *events.MemoryPublisher
		if dryRun {
			mem = events.NewMemoryPublisher()
			tracker = feedback.NewTracker(appCtx.Matches, appCtx.FeedbackRepo, appCtx.Users,
				feedback.WithEmitter(events.NewEmitter(mem, logger.L())),
				feedback.WithLogger(logger.L()),
				feedback.WithReminderAge(appCtx.ReminderAge),
			)
		}

		sent, err := tracker.PublishDueReminders(ctx, now)
		if err != nil {
			return err
		}
		if mem != nil {
			for _, ev := range mem.Events() {
				fmt.Fprintf(out, "%s %s\n", ev.Type, ev.Payload)
			}
		}
		fmt.Fprintf(out, "%d reminders\n", sent)
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the events instead of publishing them")
	rootCmd.AddCommand(remindCmd)
}
