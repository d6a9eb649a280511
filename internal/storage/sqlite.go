package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteGateway stores the blob in a one-row slots table. Heavier
// than the file gateway but survives partial writes for free.
type SQLiteGateway struct {
	db   *sql.DB
	slot string
}

// NewSQLiteGateway opens or creates a SQLite database at the given path.
func NewSQLiteGateway(dbPath, slot string) (*SQLiteGateway, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	g := &SQLiteGateway{db: db, slot: slot}
	if err := g.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return g, nil
}

func (g *SQLiteGateway) migrate() error {
	_, err := g.db.Exec(`
	CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL
	);`)
	return err
}

func (g *SQLiteGateway) Read(ctx context.Context) ([]byte, error) {
	var data string
	err := g.db.QueryRowContext(ctx,
		`SELECT data FROM slots WHERE name = ?`, g.slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", g.slot, err)
	}
	return []byte(data), nil
}

func (g *SQLiteGateway) Write(ctx context.Context, data []byte) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO slots (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		g.slot, string(data))
	if err != nil {
		return fmt.Errorf("write slot %s: %w", g.slot, err)
	}
	return nil
}

func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
