package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/ical"
	"encore/internal/schedule"
	"encore/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dayFlag string
	var owner string
	var meetups bool

	cmd := &cobra.Command{
		Use:   "export <file.ics>",
		Short: "Export stored schedules or meetup suggestions as an iCalendar file",
		Long: "Write every stored schedule (or one person's with --owner, or the " +
			"ranked meetup suggestions with --meetups) to an .ics file that phone " +
			"calendars can import. Use - to write to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if owner != "" && meetups {
				return errors.New("--owner and --meetups are mutually exclusive")
			}
			day, err := parseDayFlag(dayFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				var schedules []schedule.Schedule
				if owner != "" {
					sched, err := st.GetSchedule(cmd.Context(), owner)
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("no schedule stored for %q", owner)
					}
					if err != nil {
						return err
					}
					schedules = []schedule.Schedule{sched}
				} else {
					schedules, err = st.ListSchedules(cmd.Context())
					if err != nil {
						return err
					}
				}
				if len(schedules) == 0 {
					return fmt.Errorf("nothing to export; run `encore ingest` first")
				}

				var out io.Writer
				if target == "-" {
					out = cmd.OutOrStdout()
				} else {
					abs, err := filepath.Abs(target)
					if err != nil {
						return fmt.Errorf("resolve path: %w", err)
					}
					f, err := os.Create(abs)
					if err != nil {
						return fmt.Errorf("create %s: %w", abs, err)
					}
					defer f.Close()
					out = f
					target = abs
				}

				if meetups {
					candidates := discoverMeetups(cfg, schedules, day)
					if len(candidates) == 0 {
						return fmt.Errorf("no meetup windows to export on %s", day.Format(dayLayout))
					}
					if err := ical.WriteMeetups(out, candidates); err != nil {
						return fmt.Errorf("write calendar: %w", err)
					}
				} else {
					if err := ical.WriteSchedules(out, schedules, cfg.Festival.AssumedSet()); err != nil {
						return fmt.Errorf("write calendar: %w", err)
					}
				}

				if target != "-" {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&owner, "owner", "o", "", "Export only this person's schedule")
	cmd.Flags().BoolVar(&meetups, "meetups", false, "Export meetup suggestions instead of schedules")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Festival day for --meetups (YYYY-MM-DD, default today)")
	return cmd
}
