package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/schedule"
	"encore/internal/store"
	"encore/internal/textutil"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var owner string
	var artist string
	var stage string
	var startFlag string
	var endFlag string
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "add --owner <name> --artist <artist> --start <time>",
		Short: "Add a single performance to a stored schedule by hand",
		Long: "Add a performance without going through a photo, for entries the " +
			"recognizer missed or sets announced after the lineup was printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(dayFlag)
			if err != nil {
				return err
			}
			start, err := parseClockFlag(startFlag, day)
			if err != nil {
				return err
			}
			if start.IsZero() {
				return errors.New("start time required")
			}
			end, err := parseClockFlag(endFlag, day)
			if err != nil {
				return err
			}

			perf := schedule.Performance{
				Artist: textutil.CleanArtist(artist),
				Stage:  strings.TrimSpace(stage),
				Start:  start,
				End:    end,
			}
			if !perf.Valid() {
				return fmt.Errorf("artist %q and start time do not form a valid performance", artist)
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				existing, err := st.GetSchedule(cmd.Context(), owner)
				if err != nil && !errors.Is(err, store.ErrNotFound) {
					return err
				}

				merged := schedule.Merge(existing.Performances, []schedule.Performance{perf})
				rec, err := st.SaveSchedule(cmd.Context(), owner, merged)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added %s at %s for %s (%d performances total)\n",
					perf.Artist, formatClock(perf.Start), rec.Owner, rec.Count)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&owner, "owner", "o", "", "Name of the person this schedule belongs to")
	cmd.Flags().StringVar(&artist, "artist", "", "Artist name")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage name")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time (HH:MM or YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time (optional)")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Festival day for HH:MM times (default today)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}
