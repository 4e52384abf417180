package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/meetup"
	"encore/internal/schedule"
	"encore/internal/store"
	"encore/internal/textutil"
)

func newMeetupCommand(ctx *commandContext) *cobra.Command {
	var dayFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "meetup",
		Short: "Suggest times and places for the group to meet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(dayFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				schedules, err := st.ListSchedules(cmd.Context())
				if err != nil {
					return err
				}
				if len(schedules) < 2 {
					return fmt.Errorf("meetup discovery needs at least two stored schedules, have %d", len(schedules))
				}

				candidates := discoverMeetups(cfg, schedules, day)
				if jsonOut {
					return writeJSON(cmd, candidates)
				}

				out := cmd.OutOrStdout()
				if len(candidates) == 0 {
					fmt.Fprintln(out, "No shared free windows found. Try adding more of everyone's sets.")
					return nil
				}

				rows := make([][]string, 0, len(candidates))
				for _, c := range candidates {
					rows = append(rows, []string{
						formatSpan(c.Start, c.End),
						meetupKind(c),
						participantList(c.Participants),
						meetupPlace(c),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Window", "Kind", "Who", "Where"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Festival day (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func discoverMeetups(cfg *config.Config, schedules []schedule.Schedule, day time.Time) []meetup.Candidate {
	win := schedule.DayWindow(day, cfg.Festival.DayStartHour, cfg.Festival.DayEndHour)
	params := meetup.DefaultParams(win)
	params.ArriveEarly = cfg.Festival.ArriveEarly()
	params.MinOverlap = cfg.Festival.MinOverlap()
	params.MaxWindow = cfg.Festival.MaxWindow()
	params.AssumedSet = cfg.Festival.AssumedSet()
	params.MaxCandidates = cfg.Festival.MaxCandidates
	params.DayPivotHour = cfg.Festival.DayPivotHour
	return meetup.NewEngine(params).Discover(schedules)
}

func meetupKind(c meetup.Candidate) string {
	if c.Recommended {
		return "before shared set"
	}
	return "shared free time"
}

func meetupPlace(c meetup.Candidate) string {
	if c.AnchorStage == "" {
		return "-"
	}
	if c.AnchorArtist != "" {
		return c.AnchorStage + " (" + c.AnchorArtist + ")"
	}
	return c.AnchorStage
}

func participantList(names []string) string {
	display := make([]string, 0, len(names))
	for _, name := range names {
		display = append(display, textutil.DisplayTitle(name))
	}
	return strings.Join(display, ", ")
}
