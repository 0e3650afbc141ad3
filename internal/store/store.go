// Package store persists generation history, feedback, and the brand
// profile in a local SQLite database. Structured request and script data
// is stored as JSON columns; feedback and performance updates rewrite the
// variation list for the affected entry.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"reelcraft/internal/core"
)

// ErrNotFound is returned when a history entry or variation does not
// exist.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if necessary) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reelcraft.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		request TEXT NOT NULL,
		variations TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);

	CREATE TABLE IF NOT EXISTS brand_profiles (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		profile TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveHistory inserts a new history entry. A missing ID or timestamp is
// filled in, and the stored entry is returned.
func (s *Store) SaveHistory(entry core.HistoryEntry) (core.HistoryEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	requestJSON, err := json.Marshal(entry.Request)
	if err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	variationsJSON, err := json.Marshal(entry.Variations)
	if err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to marshal variations: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO history (id, created_at, request, variations) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.CreatedAt, string(requestJSON), string(variationsJSON),
	)
	if err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to save history entry: %w", err)
	}
	return entry, nil
}

func scanHistory(row interface{ Scan(...any) error }) (core.HistoryEntry, error) {
	var entry core.HistoryEntry
	var requestJSON, variationsJSON string
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &requestJSON, &variationsJSON); err != nil {
		return core.HistoryEntry{}, err
	}
	if err := json.Unmarshal([]byte(requestJSON), &entry.Request); err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to unmarshal request: %w", err)
	}
	if err := json.Unmarshal([]byte(variationsJSON), &entry.Variations); err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to unmarshal variations: %w", err)
	}
	return entry, nil
}

// GetHistory fetches one entry by ID.
func (s *Store) GetHistory(id string) (core.HistoryEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, created_at, request, variations FROM history WHERE id = ?`, id,
	)
	entry, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.HistoryEntry{}, ErrNotFound
	}
	if err != nil {
		return core.HistoryEntry{}, fmt.Errorf("failed to get history entry: %w", err)
	}
	return entry, nil
}

// ListHistory returns entries newest first. A non-positive limit returns
// everything.
func (s *Store) ListHistory(limit int) ([]core.HistoryEntry, error) {
	query := `SELECT id, created_at, request, variations FROM history ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []core.HistoryEntry
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteHistory removes one entry.
func (s *Store) DeleteHistory(id string) error {
	result, err := s.db.Exec(`DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) updateVariation(entryID string, variation int, mutate func(*core.Script)) error {
	entry, err := s.GetHistory(entryID)
	if err != nil {
		return err
	}
	if variation < 0 || variation >= len(entry.Variations) {
		return fmt.Errorf("variation %d: %w", variation, ErrNotFound)
	}

	mutate(&entry.Variations[variation])

	variationsJSON, err := json.Marshal(entry.Variations)
	if err != nil {
		return fmt.Errorf("failed to marshal variations: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE history SET variations = ? WHERE id = ?`,
		string(variationsJSON), entryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update history entry: %w", err)
	}
	return nil
}

// UpdateFeedback records liked/disliked feedback on one variation. An
// empty feedback value clears it.
func (s *Store) UpdateFeedback(entryID string, variation int, feedback core.Feedback) error {
	return s.updateVariation(entryID, variation, func(script *core.Script) {
		script.Feedback = feedback
	})
}

// UpdatePerformance records manually tracked performance numbers on one
// variation.
func (s *Store) UpdatePerformance(entryID string, variation int, perf core.PerformanceData) error {
	return s.updateVariation(entryID, variation, func(script *core.Script) {
		script.Performance = &perf
	})
}

// LikedScripts returns the most recently generated scripts marked liked,
// newest first, up to limit.
func (s *Store) LikedScripts(limit int) ([]core.Script, error) {
	entries, err := s.ListHistory(0)
	if err != nil {
		return nil, err
	}

	var liked []core.Script
	for _, entry := range entries {
		for _, script := range entry.Variations {
			if script.Feedback == core.FeedbackLiked {
				liked = append(liked, script)
				if limit > 0 && len(liked) >= limit {
					return liked, nil
				}
			}
		}
	}
	return liked, nil
}

// SaveBrandProfile stores the single brand profile, replacing any
// existing one.
func (s *Store) SaveBrandProfile(profile core.BrandProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal brand profile: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO brand_profiles (id, profile, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		string(profileJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save brand profile: %w", err)
	}
	return nil
}

// GetBrandProfile loads the brand profile. A nil profile with nil error
// means none has been saved.
func (s *Store) GetBrandProfile() (*core.BrandProfile, error) {
	var profileJSON string
	err := s.db.QueryRow(`SELECT profile FROM brand_profiles WHERE id = 1`).Scan(&profileJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand profile: %w", err)
	}

	var profile core.BrandProfile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand profile: %w", err)
	}
	return &profile, nil
}

// DeleteBrandProfile removes the stored brand profile if present.
func (s *Store) DeleteBrandProfile() error {
	_, err := s.db.Exec(`DELETE FROM brand_profiles WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to delete brand profile: %w", err)
	}
	return nil
}
