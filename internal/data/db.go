package data

import (
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/jmoiron/sqlx"
)

const SQLCreate = `
PRAGMA foreign_keys = ON;
PRAGMA encoding = 'UTF-8';

CREATE TABLE IF NOT EXISTS storage
(
    key        TEXT PRIMARY KEY NOT NULL,
    value      TEXT             NOT NULL,
    updated_at TEXT             NOT NULL DEFAULT (STRFTIME('%Y-%m-%d %H:%M:%f', 'NOW', 'localtime'))
);`

// Open opens sqlite database and creates the schema if it does not exist.
// Use ":memory:" for a transient database.
func Open(filename string) (*sqlx.DB, error) {
	db, err := pkg.OpenSqliteDBx(filename)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(SQLCreate); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
