// Package storage provides SQLite-based persistence for the maze catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the maze catalog.
type Store struct {
	db *sql.DB
}

// MazeRecord describes one generated maze file in the catalog.
type MazeRecord struct {
	ID        int64
	Path      string
	Width     int
	Height    int
	Seed      int64
	CreatedAt time.Time
}

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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS mazes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mazes_path ON mazes(path);
		CREATE INDEX IF NOT EXISTS idx_mazes_recent ON mazes(created_at DESC);
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

// SaveMaze records a generated maze file in the catalog.
// Returns the ID of the inserted record.
func (s *Store) SaveMaze(path string, width, height int, seed int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO mazes (path, width, height, seed) VALUES (?, ?, ?, ?)",
		path, width, height, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save maze record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMazes retrieves the most recently generated mazes, newest first.
func (s *Store) RecentMazes(limit int) ([]MazeRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, path, width, height, seed, created_at
		 FROM mazes
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mazes: %w", err)
	}
	defer rows.Close()

	var records []MazeRecord
	for rows.Next() {
		rec, err := scanMaze(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MazeByPath retrieves the newest catalog entry for the given file path.
// Returns nil if the path has never been recorded.
func (s *Store) MazeByPath(path string) (*MazeRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, path, width, height, seed, created_at
		 FROM mazes
		 WHERE path = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		path,
	)

	rec, err := scanMaze(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteMaze removes a catalog entry by ID. The maze file itself is left
// alone.
func (s *Store) DeleteMaze(id int64) error {
	_, err := s.db.Exec("DELETE FROM mazes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete maze record: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMaze reads one maze record, handling both time.Time and string
// representations of the created_at column.
func scanMaze(row scanner) (MazeRecord, error) {
	var rec MazeRecord
	var createdAt any
	if err := row.Scan(&rec.ID, &rec.Path, &rec.Width, &rec.Height, &rec.Seed, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return rec, err
		}
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
