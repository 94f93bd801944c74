// Package history records check runs in a small SQLite ledger so past
// results survive the process and can be listed later.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ftahirops/diskcheck/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	ts       INTEGER NOT NULL,
	device   TEXT    NOT NULL,
	status   INTEGER NOT NULL,
	skipped  INTEGER NOT NULL,
	summary  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_ts ON runs(ts);
`

// Entry is one recorded run.
type Entry struct {
	Time    time.Time
	Device  string
	Status  model.Status
	Skipped bool
	Summary string
}

// Store is a handle on the run ledger.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the ledger under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// Single writer keeps the pure-Go driver serialized.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends one run to the ledger.
func (s *Store) Record(rep *model.Report) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (ts, device, status, skipped, summary) VALUES (?, ?, ?, ?, ?)",
		rep.Timestamp.Unix(), rep.Device, int(rep.Status), boolToInt(rep.Skipped), summarize(rep),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to n most recent runs, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT ts, device, status, skipped, summary FROM runs ORDER BY ts DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			ts              int64
			status, skipped int
			e               Entry
		)
		if err := rows.Scan(&ts, &e.Device, &status, &skipped, &e.Summary); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.Time = time.Unix(ts, 0)
		e.Status = model.Status(status)
		e.Skipped = skipped != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// summarize reduces a report to one ledger line: the failing
// diagnostics, or the pass/skip milestone.
func summarize(rep *model.Report) string {
	if rep.Skipped {
		return fmt.Sprintf("skipped: %s is non-volatile memory", rep.Device)
	}
	if rep.Status == model.Success {
		return fmt.Sprintf("PASS: Finished testing stats for %s", rep.Device)
	}
	var parts []string
	for _, c := range rep.Checks {
		if c.Status == model.CheckFail {
			parts = append(parts, firstLine(c.Detail))
		}
	}
	return strings.Join(parts, "; ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
