// Package seqss stores named sequences in a SQLite database.
package seqss

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sequence database at p, creating it if needed.
// Pass ":memory:" for an ephemeral database.
func OpenDB(p string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", p)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Setup applies the schema.  It is safe to call on an already set up
// database.
func Setup(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS seqs (
		name TEXT NOT NULL,
		elems BLOB NOT NULL,

		PRIMARY KEY(name)
	) WITHOUT ROWID, STRICT;`)
	return err
}

type ErrNotFound struct {
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("seqss: no sequence named %q", e.Name)
}
