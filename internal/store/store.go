package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"encore/internal/config"
	"encore/internal/schedule"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear the database after a bump.
const schemaVersion = 1

// Store manages schedule persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// ScheduleRecord is the stored metadata for one contributor's schedule.
type ScheduleRecord struct {
	ID        string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Count     int
}

// Open initializes or connects to the schedule database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "encore.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		if err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// SaveSchedule upserts an owner's schedule and replaces its performances with
// the given, already-deduplicated list.
func (s *Store) SaveSchedule(ctx context.Context, owner string, perfs []schedule.Performance) (*ScheduleRecord, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner name required")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var id string
	err = tx.QueryRowContext(ctx, "SELECT id FROM schedules WHERE owner_name = ?", owner).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		id = uuid.NewString()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO schedules (id, owner_name, created_at, updated_at) VALUES (?, ?, ?, ?)",
			id, owner, timestamp, timestamp)
		if err != nil {
			return nil, fmt.Errorf("insert schedule: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("find schedule: %w", err)
	default:
		if _, err = tx.ExecContext(ctx,
			"UPDATE schedules SET updated_at = ? WHERE id = ?", timestamp, id); err != nil {
			return nil, fmt.Errorf("touch schedule: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM performances WHERE schedule_id = ?", id); err != nil {
		return nil, fmt.Errorf("clear performances: %w", err)
	}
	for _, p := range perfs {
		if !p.Valid() {
			continue
		}
		endAt := sql.NullString{}
		if !p.End.IsZero() {
			endAt = sql.NullString{String: p.End.UTC().Format(time.RFC3339Nano), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO performances (schedule_id, artist, stage, start_at, end_at, identity)
             VALUES (?, ?, ?, ?, ?, ?)`,
			id, p.Artist, p.Stage, p.Start.UTC().Format(time.RFC3339Nano), endAt, p.Identity())
		if err != nil {
			return nil, fmt.Errorf("insert performance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.scheduleRecord(ctx, owner)
}

func (s *Store) scheduleRecord(ctx context.Context, owner string) (*ScheduleRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT s.id, s.owner_name, s.created_at, s.updated_at,
                (SELECT COUNT(1) FROM performances p WHERE p.schedule_id = s.id)
         FROM schedules s WHERE s.owner_name = ?`, owner)
	return scanRecord(row)
}

func scanRecord(row *sql.Row) (*ScheduleRecord, error) {
	var rec ScheduleRecord
	var createdAt, updatedAt string
	if err := row.Scan(&rec.ID, &rec.Owner, &createdAt, &updatedAt, &rec.Count); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &rec, nil
}

// GetSchedule loads one owner's schedule with performances in chronological
// order. Returns ErrNotFound for unknown owners.
func (s *Store) GetSchedule(ctx context.Context, owner string) (schedule.Schedule, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM schedules WHERE owner_name = ?", owner).Scan(&id)
	if err == sql.ErrNoRows {
		return schedule.Schedule{}, ErrNotFound
	}
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("find schedule: %w", err)
	}

	perfs, err := s.performances(ctx, id)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return schedule.Schedule{Owner: owner, Performances: perfs}, nil
}

func (s *Store) performances(ctx context.Context, scheduleID string) ([]schedule.Performance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT artist, stage, start_at, end_at FROM performances WHERE schedule_id = ? ORDER BY start_at",
		scheduleID)
	if err != nil {
		return nil, fmt.Errorf("query performances: %w", err)
	}
	defer rows.Close()

	var perfs []schedule.Performance
	for rows.Next() {
		var p schedule.Performance
		var startAt string
		var endAt sql.NullString
		if err := rows.Scan(&p.Artist, &p.Stage, &startAt, &endAt); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		if p.Start, err = time.Parse(time.RFC3339Nano, startAt); err != nil {
			// Malformed rows are skipped, not fatal.
			continue
		}
		if endAt.Valid {
			p.End, _ = time.Parse(time.RFC3339Nano, endAt.String)
		}
		perfs = append(perfs, p)
	}
	return perfs, rows.Err()
}

// ListSchedules loads every stored schedule, owners sorted by name.
func (s *Store) ListSchedules(ctx context.Context) ([]schedule.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, owner_name FROM schedules ORDER BY owner_name")
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	type entry struct {
		id    string
		owner string
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.owner); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	schedules := make([]schedule.Schedule, 0, len(entries))
	for _, e := range entries {
		perfs, err := s.performances(ctx, e.id)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule.Schedule{Owner: e.owner, Performances: perfs})
	}
	return schedules, nil
}

// ListRecords returns stored schedule metadata, owners sorted by name.
func (s *Store) ListRecords(ctx context.Context) ([]ScheduleRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.owner_name, s.created_at, s.updated_at,
                (SELECT COUNT(1) FROM performances p WHERE p.schedule_id = s.id)
         FROM schedules s ORDER BY s.owner_name`)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	var records []ScheduleRecord
	for rows.Next() {
		var rec ScheduleRecord
		var createdAt, updatedAt string
		if err := rows.Scan(&rec.ID, &rec.Owner, &createdAt, &updatedAt, &rec.Count); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteSchedule removes an owner's schedule and its performances. Returns
// ErrNotFound when the owner has no stored schedule.
func (s *Store) DeleteSchedule(ctx context.Context, owner string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM schedules WHERE owner_name = ?", owner)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
