package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"encore/internal/config"
	"encore/internal/ingest"
	"encore/internal/logging"
	"encore/internal/ocr"
	"encore/internal/store"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var owner string
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "ingest --owner <name> <image>...",
		Short: "Read schedule photos and merge them into a stored schedule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(dayFlag)
			if err != nil {
				return err
			}

			images := make([]string, 0, len(args))
			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve path %q: %w", arg, err)
				}
				images = append(images, abs)
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("set up logging: %w", err)
				}

				in := ingest.New(cfg, ocr.NewCLI(cfg.OCR), st, logger)
				in.Progress = func(imagePath string, update ocr.ProgressUpdate) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %3.0f%% %s\n",
						filepath.Base(imagePath), update.Percent, update.Message)
				}

				result, err := in.Ingest(cmd.Context(), owner, day, images)
				if err != nil {
					return err
				}
				renderIngestResult(cmd, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&owner, "owner", "o", "", "Name of the person this schedule belongs to")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Festival day the photos cover (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func renderIngestResult(cmd *cobra.Command, result *ingest.Result) {
	rows := make([][]string, 0, len(result.Images))
	failed := 0
	for _, img := range result.Images {
		status := "ok"
		if img.Err != nil {
			status = img.Err.Error()
			failed++
		}
		rows = append(rows, []string{
			filepath.Base(img.Path),
			strconv.Itoa(img.Added),
			status,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Image", "Added", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))

	summary := fmt.Sprintf("%s now has %d performances", result.Owner, result.Record.Count)
	if failed > 0 {
		summary += fmt.Sprintf(" (%d of %d images failed)", failed, len(result.Images))
	}
	fmt.Fprintln(out, summary)
}
