package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"encore/internal/config"
	"encore/internal/extract"
	"encore/internal/logging"
	"encore/internal/ocr"
	"encore/internal/schedule"
	"encore/internal/store"
	"encore/internal/textutil"
)

// ErrLocked indicates another ingest run currently holds the data directory.
var ErrLocked = errors.New("another ingest run is in progress")

// ImageResult reports the outcome for a single photographed lineup.
type ImageResult struct {
	Path  string
	Added int
	Err   error
}

// Result summarizes one ingest batch.
type Result struct {
	Owner  string
	Images []ImageResult
	Record *store.ScheduleRecord
}

// Ingestor runs the OCR, extraction, and merge pipeline for schedule photos.
type Ingestor struct {
	client    ocr.Client
	extractor *extract.Extractor
	store     *store.Store
	logger    *slog.Logger
	lockPath  string

	// Progress, when set, receives OCR progress for the image being read.
	Progress func(imagePath string, update ocr.ProgressUpdate)
}

// New builds an Ingestor around the given OCR client and store.
func New(cfg *config.Config, client ocr.Client, st *store.Store, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		client:    client,
		extractor: extract.New(),
		store:     st,
		logger:    logging.WithComponent(logger, "ingest"),
		lockPath:  filepath.Join(cfg.Paths.DataDir, "ingest.lock"),
	}
}

// Ingest processes the given images in order and persists the merged
// schedule for owner. Per-image failures land in the result entries; the
// returned error covers batch-level failures such as lock contention or a
// failed save.
func (in *Ingestor) Ingest(ctx context.Context, owner string, day time.Time, imagePaths []string) (*Result, error) {
	if owner == "" {
		return nil, errors.New("owner name required")
	}
	if len(imagePaths) == 0 {
		return nil, errors.New("at least one image required")
	}

	lock := flock.New(in.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire ingest lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			in.logger.Warn("failed to release ingest lock", "error", unlockErr)
		}
	}()

	accumulated, err := in.existing(ctx, owner)
	if err != nil {
		return nil, err
	}
	before := len(accumulated)

	result := &Result{Owner: owner}
	for _, path := range imagePaths {
		entry := ImageResult{Path: path}
		perfs, imgErr := in.readImage(ctx, path, day)
		if imgErr != nil {
			entry.Err = imgErr
			in.logger.Warn("image skipped",
				logging.FieldImage, path,
				"error", imgErr)
			result.Images = append(result.Images, entry)
			continue
		}

		merged := schedule.Merge(accumulated, perfs)
		entry.Added = len(merged) - len(accumulated)
		accumulated = merged
		in.logger.Info("image ingested",
			logging.FieldImage, path,
			"extracted", len(perfs),
			"added", entry.Added)
		result.Images = append(result.Images, entry)
	}

	record, err := in.store.SaveSchedule(ctx, owner, accumulated)
	if err != nil {
		return nil, fmt.Errorf("save schedule for %s: %w", owner, err)
	}
	result.Record = record
	in.logger.Info("ingest complete",
		logging.FieldOwner, owner,
		"images", len(imagePaths),
		"added", len(accumulated)-before,
		"total", record.Count)
	return result, nil
}

func (in *Ingestor) existing(ctx context.Context, owner string) ([]schedule.Performance, error) {
	current, err := in.store.GetSchedule(ctx, owner)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load schedule for %s: %w", owner, err)
	}
	return current.Performances, nil
}

func (in *Ingestor) readImage(ctx context.Context, path string, day time.Time) ([]schedule.Performance, error) {
	var progress func(ocr.ProgressUpdate)
	if in.Progress != nil {
		progress = func(update ocr.ProgressUpdate) {
			in.Progress(path, update)
		}
	}

	raw, err := in.client.Recognize(ctx, path, progress)
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	normalized := textutil.NormalizeRecognized(raw)
	perfs := in.extractor.Extract(normalized, day)
	if len(perfs) == 0 {
		return nil, errors.New("no performances recognized in image")
	}
	return perfs, nil
}
