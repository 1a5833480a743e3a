package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var quotaDay string

var quotaCmd = &cobra.Command{
	Use:   "quota <user-id>",
	Short: "Show a user's view allowance for today or a given day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be numeric: %w", err)
		}

		ctx := cmd.Context()
		appCtx, closer, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		day := quotaDay
		if day == "" {
			day = appCtx.Days.Today()
		} else if _, err := appCtx.Days.StartOfDay(day); err != nil {
			return fmt.Errorf("day must be YYYY-MM-DD: %w", err)
		}

		avail, err := appCtx.Ledger.AvailableOn(ctx, userID, day)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "day=%s base=%d bonus=%d total=%d used=%d remaining=%d\n",
			avail.DayKey, avail.Base, avail.Bonus, avail.Total, avail.Used, avail.Remaining)
		return nil
	},
}

func init() {
	quotaCmd.Flags().StringVar(&quotaDay, "day", "", "past day key in the quota timezone (default today)")
	rootCmd.AddCommand(quotaCmd)
}
