package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversion directions as stored in the history log.
const (
	DirectionToAISP  = "to_aisp"
	DirectionToProse = "to_prose"
)

// ErrNotFound is returned when a history record does not exist.
var ErrNotFound = errors.New("conversion record not found")

// Record is one logged conversion.
type Record struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Direction     string    `json:"direction"`
	Tier          string    `json:"tier,omitempty"`
	Input         string    `json:"input"`
	Output        string    `json:"output"`
	Confidence    float64   `json:"confidence"`
	TokenRatio    int       `json:"token_ratio"`
	UnmappedCount int       `json:"unmapped_count"`
	Condition     string    `json:"condition,omitempty"`
}

// Append inserts a conversion record and returns its ID.
//
// A missing ID is filled with a UUIDv7 so rows sort by insertion time; a
// missing CreatedAt is filled with the current UTC time. Duplicate IDs are
// silently ignored for idempotency.
func (s *Store) Append(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(id, created_at, direction, tier, input, output, confidence, token_ratio, unmapped_count, condition)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Direction,
		rec.Tier,
		rec.Input,
		rec.Output,
		rec.Confidence,
		rec.TokenRatio,
		rec.UnmappedCount,
		rec.Condition,
	)
	if err != nil {
		return "", fmt.Errorf("append conversion: %w", err)
	}

	return rec.ID, nil
}

// Recent returns the most recent records, newest first. A non-positive limit
// defaults to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, direction, tier, input, output, confidence, token_ratio, unmapped_count, condition
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent conversions: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}

	return recs, nil
}

// Get returns one record by ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, direction, tier, input, output, confidence, token_ratio, unmapped_count, condition
		FROM conversions
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Count returns the number of logged conversions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return n, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var createdAt string
	err := sc.Scan(
		&rec.ID,
		&createdAt,
		&rec.Direction,
		&rec.Tier,
		&rec.Input,
		&rec.Output,
		&rec.Confidence,
		&rec.TokenRatio,
		&rec.UnmappedCount,
		&rec.Condition,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan conversion: %w", err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}

	return rec, nil
}
