// Package storage provides SQLite-based persistence for finished game results.
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

	"github.com/vovakirdan/pocket-dragon/internal/dragon"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished game.
type ResultEntry struct {
	ID             int64
	Difficulty     string
	Won            bool
	Player         string // Empty for local play, SSH user otherwise
	SuccessesLeft  int
	GameTimer      int // Game timer remaining at the end
	FeedTimer      int // Feed timer remaining at the end
	RemainingClues int
	BasePoints     int
	TimePoints     int
	Total          int
	DurationSecs   int
	CreatedAt      time.Time
}

// NewEntry builds a ledger entry from a finished game state.
func NewEntry(s dragon.State, player string) ResultEntry {
	score := dragon.ScoreOf(s)
	return ResultEntry{
		Difficulty:     string(s.Difficulty.Name),
		Won:            s.Result.IsWon(),
		Player:         player,
		SuccessesLeft:  s.SuccessesUntilVictory,
		GameTimer:      s.GameTimer,
		FeedTimer:      s.FeedTimer,
		RemainingClues: s.RemainingClues,
		BasePoints:     score.Base,
		TimePoints:     score.Time,
		Total:          score.Total(),
		DurationSecs:   s.Difficulty.InitialGameTimer - s.GameTimer,
	}
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			won INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			successes_left INTEGER NOT NULL,
			game_timer INTEGER NOT NULL,
			feed_timer INTEGER NOT NULL,
			remaining_clues INTEGER NOT NULL,
			base_points INTEGER NOT NULL,
			time_points INTEGER NOT NULL,
			total INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, total DESC);
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

// SaveResult records a finished game and returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results
		 (difficulty, won, player, successes_left, game_timer, feed_timer,
		  remaining_clues, base_points, time_points, total, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Difficulty, e.Won, e.Player, e.SuccessesLeft, e.GameTimer, e.FeedTimer,
		e.RemainingClues, e.BasePoints, e.TimePoints, e.Total, e.DurationSecs,
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

// TopResults retrieves the best N results for the given difficulty.
// Results are ordered by total descending, newest first on ties.
func (s *Store) TopResults(difficulty string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, won, player, successes_left, game_timer, feed_timer,
		        remaining_clues, base_points, time_points, total, duration_secs, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY total DESC, id DESC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Difficulty, &e.Won, &e.Player, &e.SuccessesLeft, &e.GameTimer, &e.FeedTimer,
			&e.RemainingClues, &e.BasePoints, &e.TimePoints, &e.Total, &e.DurationSecs, &createdAt,
		); err != nil {
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

// BestTotal returns the highest total for the given difficulty.
// Returns 0 if no results exist.
func (s *Store) BestTotal(difficulty string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(total) FROM results WHERE difficulty = ?",
		difficulty,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best total: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

// ClearResults deletes all results for the given difficulty.
func (s *Store) ClearResults(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one difficulty.
type Stats struct {
	Difficulty string
	Played     int
	Won        int
	BestTotal  int
	AvgTotal   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, or 0 when none were played.
func (st Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// GetStats retrieves aggregated statistics for a difficulty.
func (s *Store) GetStats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(total), 0), COALESCE(AVG(total), 0)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Played, &stats.Won, &stats.BestTotal, &stats.AvgTotal)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE difficulty = ? ORDER BY id DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllStats retrieves statistics for every difficulty that has been played.
func (s *Store) GetAllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), SUM(won), MAX(total), AVG(total), MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Played, &st.Won, &st.BestTotal, &st.AvgTotal, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		all[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
