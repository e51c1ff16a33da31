package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	// Driver SQLite para database/sql
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS calls (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT UNIQUE NOT NULL,
		operation TEXT NOT NULL,
		exit_code INTEGER NOT NULL,
		record TEXT NOT NULL,
		started_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calls_operation ON calls(operation)`,
	`CREATE INDEX IF NOT EXISTS idx_calls_exit_code ON calls(exit_code)`,
}

// SQLite persiste los registros en una base de datos SQLite.
type SQLite struct {
	db       *sql.DB
	capacity int
	logger   ports.Logger
}

var _ ports.CallJournal = (*SQLite)(nil)

func NewSQLite(path string, capacity int, logger ports.Logger) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, errors.Wrapf(err, "unable to create directory for %s", path)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	// Una sola conexión: con ":memory:" cada conexión sería una base distinta.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "journal migration failed")
		}
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SQLite{db: db, capacity: capacity, logger: logger}, nil
}

func (s *SQLite) Notify(rec domain.CallRecord) { notify(s, s.logger, rec) }

func (s *SQLite) Append(rec domain.CallRecord) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "unable to encode call record")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO calls (id, operation, exit_code, record, started_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Operation, rec.ExitCode, string(buf), rec.StartedAt.UTC())
	if err != nil {
		return errors.Wrap(err, "unable to insert call record")
	}
	_, err = tx.Exec(`DELETE FROM calls WHERE seq <= (SELECT MAX(seq) FROM calls) - ?`, s.capacity)
	if err != nil {
		return errors.Wrap(err, "unable to trim journal")
	}
	return tx.Commit()
}

func (s *SQLite) Get(id string) (domain.CallRecord, error) {
	var raw string
	err := s.db.QueryRow(`SELECT record FROM calls WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CallRecord{}, ErrNotFound
	}
	if err != nil {
		return domain.CallRecord{}, err
	}
	var rec domain.CallRecord
	return rec, json.Unmarshal([]byte(raw), &rec)
}

func (s *SQLite) Recent(limit int) ([]domain.CallRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`SELECT record FROM calls ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CallRecord{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec domain.CallRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errors.Wrap(err, "unable to decode call record")
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
