// Package storage provides an SQLite frame log: one row per simulated frame
// with the wall-clock delta that drove it, grouped by session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the frame log.
type Store struct {
	db *sql.DB
}

// Frame is one logged host frame.
type Frame struct {
	Frame   uint64
	DeltaMS uint32
	Screen  string
	Score   uint32
}

// SessionEntry summarises one logged session.
type SessionEntry struct {
	ID         int64
	Frontend   string
	User       string
	Frames     int
	TopScore   int
	StartedAt  time.Time
	LastScreen string
}

// DeltaStats aggregates the frame deltas of a session.
type DeltaStats struct {
	SessionID int64
	Frames    int
	MinMS     int
	MaxMS     int
	AvgMS     float64
	TotalMS   int64
}

// ErrNoSession is returned when a session ID has no record.
var ErrNoSession = errors.New("storage: no such session")

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite has a single writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frontend TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS frames (
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			frame INTEGER NOT NULL,
			delta_ms INTEGER NOT NULL,
			screen TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (session_id, frame)
		);
		CREATE INDEX IF NOT EXISTS idx_frames_session ON frames(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession records a new session and returns its ID.
func (s *Store) BeginSession(frontend, user string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (frontend, user) VALUES (?, ?)",
		frontend, user,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveFrames writes a batch of frames in one transaction.
func (s *Store) SaveFrames(sessionID int64, frames []Frame) error {
	if len(frames) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO frames (session_id, frame, delta_ms, screen, score) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range frames {
		if _, err := stmt.Exec(sessionID, int64(f.Frame), f.DeltaMS, f.Screen, f.Score); err != nil { //#nosec G115 -- frame counters stay far below 2^63
			tx.Rollback()
			return fmt.Errorf("storage: cannot save frame %d: %w", f.Frame, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit frames: %w", err)
	}
	return nil
}

// Frames returns the logged frames of a session in order.
func (s *Store) Frames(sessionID int64) ([]Frame, error) {
	rows, err := s.db.Query(
		`SELECT frame, delta_ms, screen, score
		 FROM frames
		 WHERE session_id = ?
		 ORDER BY frame`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var f Frame
		if err := rows.Scan(&f.Frame, &f.DeltaMS, &f.Screen, &f.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return frames, nil
}

// Sessions retrieves the most recent sessions, newest first.
func (s *Store) Sessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.frontend, s.user, s.started_at,
		        COUNT(f.frame), COALESCE(MAX(f.score), 0),
		        COALESCE((SELECT screen FROM frames WHERE session_id = s.id ORDER BY frame DESC LIMIT 1), '')
		 FROM sessions s
		 LEFT JOIN frames f ON f.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var startedAt any
		if err := rows.Scan(&e.ID, &e.Frontend, &e.User, &startedAt, &e.Frames, &e.TopScore, &e.LastScreen); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTimestamp(startedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeltaStats returns frame delta statistics for a session. A session
// with no frames yields zero stats; an unknown session yields ErrNoSession.
func (s *Store) DeltaStats(sessionID int64) (*DeltaStats, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE id = ?", sessionID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoSession, sessionID)
	}

	stats := &DeltaStats{SessionID: sessionID}
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(delta_ms), 0), COALESCE(MAX(delta_ms), 0),
		        COALESCE(AVG(delta_ms), 0), COALESCE(SUM(delta_ms), 0)
		 FROM frames WHERE session_id = ?`,
		sessionID,
	).Scan(&stats.Frames, &stats.MinMS, &stats.MaxMS, &stats.AvgMS, &stats.TotalMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get delta stats: %w", err)
	}

	return stats, nil
}

// DeleteSession removes a session and its frames.
func (s *Store) DeleteSession(sessionID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM frames WHERE session_id = ?", sessionID); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sessions WHERE id = ?", sessionID); err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTimestamp handles SQLite returning DATETIME as either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
