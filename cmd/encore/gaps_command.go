package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/schedule"
	"encore/internal/store"
	"encore/internal/textutil"
)

func newGapsCommand(ctx *commandContext) *cobra.Command {
	var dayFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "gaps <owner>",
		Short: "Show the free windows in one person's festival day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner := args[0]
			day, err := parseDayFlag(dayFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				sched, err := st.GetSchedule(cmd.Context(), owner)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no schedule stored for %q", owner)
				}
				if err != nil {
					return err
				}

				win := schedule.DayWindow(day, cfg.Festival.DayStartHour, cfg.Festival.DayEndHour)
				gaps := schedule.FindGaps(sched.Performances, win, cfg.Festival.AssumedSet())
				if jsonOut {
					return writeJSON(cmd, gaps)
				}

				out := cmd.OutOrStdout()
				if len(gaps) == 0 {
					fmt.Fprintf(out, "%s has no free windows on %s\n",
						textutil.DisplayTitle(owner), day.Format(dayLayout))
					return nil
				}

				rows := make([][]string, 0, len(gaps))
				for _, g := range gaps {
					rows = append(rows, []string{
						formatSpan(g.Start, g.End),
						formatDuration(g.Duration()),
						dash(g.PrecedingArtist),
						nextUp(g.FollowingArtist, g.FollowingStage),
					})
				}
				fmt.Fprintf(out, "Free windows for %s on %s\n",
					textutil.DisplayTitle(owner), day.Format(dayLayout))
				fmt.Fprintln(out, renderTable(
					[]string{"Window", "Length", "After", "Next up"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Festival day (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func nextUp(artist, stage string) string {
	if artist == "" {
		return "-"
	}
	if stage == "" {
		return artist
	}
	return artist + " at " + stage
}
