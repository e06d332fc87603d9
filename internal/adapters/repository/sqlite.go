package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/okian/scoutgen/internal/domain/model"
)

// SQLiteStore persists generation records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS generated_players (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  region_id TEXT NOT NULL,
  age INTEGER NOT NULL,
  position TEXT NOT NULL,
  technical INTEGER NOT NULL,
  physical INTEGER NOT NULL,
  mental INTEGER NOT NULL,
  potential INTEGER NOT NULL,
  report_json TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_generated_players_region ON generated_players(region_id);`); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save inserts a record, assigning a UUID when the id is empty.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	reportJSON, err := json.Marshal(rec.Report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO generated_players
(id, name, region_id, age, position, technical, physical, mental, potential, report_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		rec.ID, rec.Player.Name, rec.Player.RegionID, rec.Player.Age, string(rec.Player.Position),
		rec.Player.Attributes.Technical, rec.Player.Attributes.Physical, rec.Player.Attributes.Mental,
		rec.Player.Potential, string(reportJSON), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	return rec.ID, nil
}

// Get returns a stored record by id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Record, error) {
	var (
		rec        Record
		position   string
		reportJSON string
		createdAt  string
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, name, region_id, age, position, technical, physical, mental, potential, report_json, created_at
FROM generated_players WHERE id = ?
`, id).Scan(
		&rec.ID, &rec.Player.Name, &rec.Player.RegionID, &rec.Player.Age, &position,
		&rec.Player.Attributes.Technical, &rec.Player.Attributes.Physical, &rec.Player.Attributes.Mental,
		&rec.Player.Potential, &reportJSON, &createdAt,
	)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("query record: %w", err)
	}

	rec.Player.Position = model.Position(position)
	if err := json.Unmarshal([]byte(reportJSON), &rec.Report); err != nil {
		return Record{}, fmt.Errorf("unmarshal report: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		rec.CreatedAt = ts
	}
	return rec, nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generated_players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
