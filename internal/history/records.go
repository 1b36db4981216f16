package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// sampleLimit caps how much of the input text is retained per record.
const sampleLimit = 200

// Record captures one identification request.
type Record struct {
	ID         int64
	UUID       string
	Sample     string
	Model      string
	Alpha      float64
	Prediction string
	Score      float64
	Duration   time.Duration
	CreatedAt  time.Time
}

// Stats aggregates the stored history.
type Stats struct {
	Total      int
	ByLanguage map[string]int
}

// Insert records a completed identification and prunes old rows beyond the
// configured retention limit. The record's UUID and CreatedAt are assigned.
func (s *Store) Insert(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}
	rec.UUID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.Sample = truncateSample(rec.Sample)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO identify_requests (
            uuid, sample, model, alpha, prediction, score, duration_ms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UUID,
		rec.Sample,
		rec.Model,
		rec.Alpha,
		rec.Prediction,
		rec.Score,
		rec.Duration.Milliseconds(),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	rec.ID = id

	return s.prune(ctx)
}

func (s *Store) prune(ctx context.Context) error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.execWithRetry(
		ctx,
		`DELETE FROM identify_requests WHERE id NOT IN (
            SELECT id FROM identify_requests ORDER BY id DESC LIMIT ?
        )`,
		s.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first. A non-positive limit
// returns every retained row.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	ctx = ensureContext(ctx)
	query := "SELECT id, uuid, sample, model, alpha, prediction, score, duration_ms, created_at FROM identify_requests ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return records, nil
}

// Clear removes every stored record.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, "DELETE FROM identify_requests"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// GetStats summarizes the retained history.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{ByLanguage: map[string]int{}}

	rows, err := s.db.QueryContext(ctx,
		"SELECT prediction, COUNT(1) FROM identify_requests GROUP BY prediction")
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang string
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return Stats{}, fmt.Errorf("scan stats: %w", err)
		}
		stats.ByLanguage[lang] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		rec        Record
		durationMS int64
		createdAt  string
	)
	if err := rows.Scan(&rec.ID, &rec.UUID, &rec.Sample, &rec.Model, &rec.Alpha,
		&rec.Prediction, &rec.Score, &durationMS, &createdAt); err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = parsed
	return rec, nil
}

func truncateSample(sample string) string {
	sample = strings.TrimSpace(sample)
	if len(sample) <= sampleLimit {
		return sample
	}
	cut := sample[:sampleLimit]
	// Back up only while the cut actually split a multibyte rune; a cut
	// landing on a rune boundary stays as is.
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}
