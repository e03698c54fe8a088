// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for game records.
type Store struct {
	db *sql.DB
}

// GameResult is the record of one finished game.
type GameResult struct {
	ID        int64
	Size      int // Board dimension
	MaxTile   int
	Moves     int
	Reached   bool // Whether the goal tile was reached
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			size INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			reached INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(size, max_tile DESC, moves ASC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (size, max_tile, moves, reached) VALUES (?, ?, ?, ?)",
		r.Size, r.MaxTile, r.Moves, r.Reached,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N games for the given board size.
// Results are ordered by max tile descending, then by fewer moves.
func (s *Store) TopResults(size, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, max_tile, moves, reached, created_at
		 FROM games
		 WHERE size = ?
		 ORDER BY max_tile DESC, moves ASC, id ASC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// AllResults retrieves every game for the given board size, newest first.
func (s *Store) AllResults(size int) ([]GameResult, error) {
	rows, err := s.db.Query(
		`SELECT id, size, max_tile, moves, reached, created_at
		 FROM games
		 WHERE size = ?
		 ORDER BY id DESC`,
		size,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]GameResult, error) {
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Size, &r.MaxTile, &r.Moves, &r.Reached, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestTile returns the highest tile reached on the given board size.
// Returns 0 if no games exist.
func (s *Store) BestTile(size int) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(max_tile) FROM games WHERE size = ?",
		size,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tile: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// ClearResults deletes all records for the given board size.
func (s *Store) ClearResults(size int) error {
	_, err := s.db.Exec("DELETE FROM games WHERE size = ?", size)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one board size.
type Stats struct {
	Size         int
	GamesCount   int
	BestTile     int
	AvgMoves     float64
	ReachedCount int
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics for a board size.
func (s *Store) GetStats(size int) (*Stats, error) {
	stats := &Stats{Size: size}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(max_tile), 0), COALESCE(AVG(moves), 0), COALESCE(SUM(reached), 0)
		 FROM games WHERE size = ?`,
		size,
	).Scan(&stats.GamesCount, &stats.BestTile, &stats.AvgMoves, &stats.ReachedCount)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE size = ? ORDER BY id DESC LIMIT 1`,
		size,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllStats retrieves statistics for every board size that has been played.
func (s *Store) GetAllStats() (map[int]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT size, COUNT(*), MAX(max_tile), AVG(moves), SUM(reached), MAX(created_at)
		 FROM games
		 GROUP BY size`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Size, &st.GamesCount, &st.BestTile, &st.AvgMoves, &st.ReachedCount, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Size] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
