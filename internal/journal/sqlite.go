package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"pushover/pkg/logx"
)

const schema = `
CREATE TABLE IF NOT EXISTS deliveries (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	at       TEXT    NOT NULL,
	title    TEXT    NOT NULL,
	priority INTEGER NOT NULL,
	sound    TEXT,
	device   TEXT,
	ok       INTEGER NOT NULL,
	err      TEXT,
	took_ms  INTEGER NOT NULL
);`

type sqliteStore struct {
	db  *sql.DB
	log logx.Logger
}

func openSQLite(path string, log logx.Logger) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, log: log}, nil
}

func (s *sqliteStore) Append(ctx context.Context, e Entry) error {
	if s == nil || s.db == nil {
		return nil
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deliveries(at, title, priority, sound, device, ok, err, took_ms)
		 VALUES(?,?,?,?,?,?,?,?)`,
		e.At.Format(time.RFC3339Nano), e.Title, e.Priority,
		nullStr(e.Sound), nullStr(e.Device), boolInt(e.OK), nullStr(e.Error), e.TookMS,
	)
	return err
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func nullStr(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
