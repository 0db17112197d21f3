// Package runindex keeps a SQLite diary of generation runs for
// diagnostics: one row per pass with occupancy and mesh statistics.
package runindex

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT NOT NULL,
	mode        TEXT NOT NULL,
	engine      TEXT NOT NULL,
	blocks      INTEGER NOT NULL,
	ranges      INTEGER NOT NULL,
	verts       INTEGER NOT NULL,
	faces       INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	output      TEXT NOT NULL
);`

type Run struct {
	StartedAt  time.Time
	Mode       string
	Engine     string
	Blocks     int
	Ranges     int
	Verts      int
	Faces      int
	DurationMs int64
	Output     string
}

type DB struct {
	db *sql.DB
}

// Open creates or opens the run database at path and applies the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runindex: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("runindex: schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

func (d *DB) Record(r Run) error {
	_, err := d.db.Exec(
		`INSERT INTO runs (started_at, mode, engine, blocks, ranges, verts, faces, duration_ms, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339), r.Mode, r.Engine,
		r.Blocks, r.Ranges, r.Verts, r.Faces, r.DurationMs, r.Output,
	)
	if err != nil {
		return fmt.Errorf("runindex: record: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (d *DB) List(limit int) ([]Run, error) {
	rows, err := d.db.Query(
		`SELECT started_at, mode, engine, blocks, ranges, verts, faces, duration_ms, output
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runindex: list: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&started, &r.Mode, &r.Engine, &r.Blocks, &r.Ranges,
			&r.Verts, &r.Faces, &r.DurationMs, &r.Output); err != nil {
			return nil, fmt.Errorf("runindex: scan: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		out = append(out, r)
	}
	return out, rows.Err()
}
