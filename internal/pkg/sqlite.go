package pkg

import (
	"database/sql"
	"github.com/ansel1/merry"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func OpenSqliteDB(fileName string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", fileName)
	if err != nil {
		return nil, merry.Append(err, fileName)
	}
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)
	return conn, nil
}

func OpenSqliteDBx(fileName string) (*sqlx.DB, error) {
	conn, err := OpenSqliteDB(fileName)
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(conn, "sqlite3"), nil
}

func SqlRowsAffected(r sql.Result, want int64) error {
	n, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if n != want {
		return merry.Errorf("expected %d rows affected, got %d", want, n)
	}
	return nil
}
