// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished levels are recorded. In-progress game state is never stored.
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

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed level.
type Solve struct {
	ID        int64
	GameID    string
	LevelID   string
	Player    string // SSH user or local user name; may be empty
	Moves     int
	Pushes    int
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	LevelID    string
	Solves     int
	BestMoves  int
	BestPushes int
	LastSolved time.Time
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

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(game_id, level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(game_id, level_id, moves, pushes);
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

// SaveSolve records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.GameID == "" || solve.LevelID == "" {
		return 0, fmt.Errorf("storage: solve needs a game and level ID")
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (game_id, level_id, player, moves, pushes) VALUES (?, ?, ?, ?, ?)",
		solve.GameID, solve.LevelID, solve.Player, solve.Moves, solve.Pushes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the top N solves for a level.
// Results are ordered by moves, then pushes, then age (earliest first).
func (s *Store) BestSolves(gameID, levelID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, player, moves, pushes, created_at
		 FROM solves
		 WHERE game_id = ? AND level_id = ?
		 ORDER BY moves ASC, pushes ASC, id ASC
		 LIMIT ?`,
		gameID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []Solve
	for rows.Next() {
		var e Solve
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.LevelID, &e.Player, &e.Moves, &e.Pushes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the best solve for a level, or nil if it was never solved.
func (s *Store) Best(gameID, levelID string) (*Solve, error) {
	var e Solve
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, level_id, player, moves, pushes, created_at
		 FROM solves
		 WHERE game_id = ? AND level_id = ?
		 ORDER BY moves ASC, pushes ASC, id ASC
		 LIMIT 1`,
		gameID, levelID,
	).Scan(&e.ID, &e.GameID, &e.LevelID, &e.Player, &e.Moves, &e.Pushes, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solve: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// LevelStats retrieves statistics for every solved level of a game,
// ordered by level ID.
func (s *Store) LevelStats(gameID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MIN(pushes), MAX(created_at)
		 FROM solves
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastSolved any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.BestMoves, &st.BestPushes, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSolved = parseTime(lastSolved)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearLevel deletes all solves for one level.
func (s *Store) ClearLevel(gameID, levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ? AND level_id = ?", gameID, levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// ClearGame deletes all solves for a game.
func (s *Store) ClearGame(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
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
