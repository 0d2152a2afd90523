package macverify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Import SQLite driver for database/sql
)

type sqliteKeystore struct{ db *sql.DB }

// OpenSQLiteStore opens/creates a SQLite DB and ensures schema + PRAGMAs.
func OpenSQLiteStore(dsn string) (Keystore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	st := &sqliteKeystore{db: db}
	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=FULL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}
	schema := `
CREATE TABLE IF NOT EXISTS keys (
  name    TEXT PRIMARY KEY,
  id      TEXT    NOT NULL,
  alg     TEXT    NOT NULL,
  key     BLOB    NOT NULL,
  created INTEGER NOT NULL      -- unix nanos
);
`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

// Put stores a record, replacing any existing record with the same name.
func (s *sqliteKeystore) Put(rec KeyRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO keys(name, id, alg, key, created) VALUES(?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET id=excluded.id, alg=excluded.alg, key=excluded.key, created=excluded.created`,
		rec.Name, rec.ID, rec.Algorithm, rec.Key, rec.Created.UnixNano())
	return err
}

// Get retrieves the record stored under name.
func (s *sqliteKeystore) Get(name string) (KeyRecord, bool, error) {
	var rec KeyRecord
	var created int64
	err := s.db.QueryRow(`SELECT name, id, alg, key, created FROM keys WHERE name=?`, name).
		Scan(&rec.Name, &rec.ID, &rec.Algorithm, &rec.Key, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return KeyRecord{}, false, nil
	}
	if err != nil {
		return KeyRecord{}, false, err
	}
	rec.Created = time.Unix(0, created)
	return rec, true, nil
}

// List returns all records in ascending name order.
func (s *sqliteKeystore) List() ([]KeyRecord, error) {
	rows, err := s.db.Query(`SELECT name, id, alg, key, created FROM keys ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []KeyRecord
	for rows.Next() {
		var rec KeyRecord
		var created int64
		if err := rows.Scan(&rec.Name, &rec.ID, &rec.Algorithm, &rec.Key, &created); err != nil {
			return nil, err
		}
		rec.Created = time.Unix(0, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes the record stored under name, if any.
func (s *sqliteKeystore) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM keys WHERE name=?`, name)
	return err
}

// Close closes the underlying database.
func (s *sqliteKeystore) Close() error {
	return s.db.Close()
}
