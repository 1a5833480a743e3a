package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state <user-id> <user-id>",
	Short: "Show the match state between two users",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids [2]uint64
		for i, a := range args {
			id, err := strconv.ParseUint(a, 10, 64)
			if err != nil {
				return fmt.Errorf("user id %q must be numeric: %w", a, err)
			}
			ids[i] = id
		}

		ctx := cmd.Context()
		appCtx, closer, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		state, m, err := appCtx.Matching.StateBetween(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}
		if m == nil {
			fmt.Fprintln(cmd.OutOrStdout(), state)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s match=%d contact=%s\n", state, m.ID, m.ContactStatus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
