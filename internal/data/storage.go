package data

import (
	"context"
	"database/sql"
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/jmoiron/sqlx"
)

// Storage is a key-value table of serialized values, one row per key.
type Storage struct {
	db *sqlx.DB
}

type StorageItem struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Get returns nil value and nil error when key is not stored.
func (x *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var s string
	err := x.db.GetContext(ctx, &s, `SELECT value FROM storage WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, merry.Appendf(err, "get %q", key)
	}
	return []byte(s), nil
}

func (x *Storage) Put(ctx context.Context, key string, value []byte) error {
	r, err := x.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO storage(key, value, updated_at) VALUES (?, ?, STRFTIME('%Y-%m-%d %H:%M:%f', 'NOW', 'localtime'))`,
		key, string(value))
	if err != nil {
		return merry.Appendf(err, "put %q", key)
	}
	return pkg.SqlRowsAffected(r, 1)
}

func (x *Storage) Delete(ctx context.Context, key string) error {
	_, err := x.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key)
	return err
}

func (x *Storage) List(ctx context.Context) (items []StorageItem, err error) {
	err = x.db.SelectContext(ctx, &items, `SELECT key, value, updated_at FROM storage ORDER BY key`)
	return
}
