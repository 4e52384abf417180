package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/schedule"
	"encore/internal/store"
	"encore/internal/textutil"
)

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect and maintain stored schedules",
	}

	scheduleCmd.AddCommand(newScheduleListCommand(ctx))
	scheduleCmd.AddCommand(newScheduleShowCommand(ctx))
	scheduleCmd.AddCommand(newScheduleRemoveCommand(ctx))

	return scheduleCmd
}

func newScheduleListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List everyone with a stored schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				records, err := st.ListRecords(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, records)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No schedules stored yet. Run `encore ingest` to add one.")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						textutil.DisplayTitle(rec.Owner),
						strconv.Itoa(rec.Count),
						rec.UpdatedAt.Format(time.RFC3339),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Owner", "Performances", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newScheduleShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <owner>",
		Short: "Show one person's schedule in set order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner := args[0]
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				sched, err := st.GetSchedule(cmd.Context(), owner)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no schedule stored for %q", owner)
				}
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, sched)
				}

				schedule.SortByStart(sched.Performances)
				rows := make([][]string, 0, len(sched.Performances))
				for _, p := range sched.Performances {
					end := p.End
					rows = append(rows, []string{
						formatClock(p.Start),
						formatClock(end),
						p.Artist,
						p.Stage,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Schedule for %s\n", textutil.DisplayTitle(sched.Owner))
				fmt.Fprintln(out, renderTable(
					[]string{"Start", "End", "Artist", "Stage"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newScheduleRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <owner>",
		Short: "Remove one person's stored schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner := args[0]
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				if err := st.DeleteSchedule(cmd.Context(), owner); err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("no schedule stored for %q", owner)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed schedule for %s\n", owner)
				return nil
			})
		},
	}
}
