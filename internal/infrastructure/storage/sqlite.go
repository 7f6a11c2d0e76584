package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-tutor/internal/domain"
)

// SQLite persists puzzles in a single-file SQLite database. The grid itself
// is stored as JSON; metadata columns support listing without decoding it.
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	difficulty INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	grid       TEXT NOT NULL
);
`

// OpenSQLite opens (creating if needed) the puzzle database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the SQLite handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	grid, err := json.Marshal(p.Grid)
	if err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, difficulty, seed, created_at, grid)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			difficulty = excluded.difficulty,
			seed = excluded.seed,
			created_at = excluded.created_at,
			grid = excluded.grid`,
		p.ID, p.Name, p.Notes, int(p.Difficulty), p.Seed, p.CreatedAt, string(grid))
	if err != nil {
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, difficulty, seed, created_at, grid
		FROM puzzles WHERE id = ?`, strings.TrimSpace(id))
	var p domain.Puzzle
	var diff int
	var grid string
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &diff, &p.Seed, &p.CreatedAt, &grid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("puzzle %q: %w", id, err)
		}
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	p.Difficulty = domain.Difficulty(diff)
	if err := json.Unmarshal([]byte(grid), &p.Grid); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}
