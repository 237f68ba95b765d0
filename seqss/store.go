package seqss

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"myceliumweb.org/seqvec"
)

// Put stores s under name, replacing any previous sequence with that name.
func Put(ctx context.Context, db *sqlx.DB, name string, s *seqvec.Seq[int64]) error {
	_, err := db.ExecContext(ctx, `INSERT INTO seqs (name, elems)
		VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET elems = excluded.elems`,
		name, marshal(s))
	return err
}

// Get loads the sequence stored under name.
func Get(ctx context.Context, db *sqlx.DB, name string) (*seqvec.Seq[int64], error) {
	var data []byte
	if err := db.GetContext(ctx, &data, `SELECT elems FROM seqs WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound{Name: name}
		}
		return nil, err
	}
	return unmarshal(data)
}

// List returns the stored names in lexical order.
func List(ctx context.Context, db *sqlx.DB) ([]string, error) {
	var names []string
	if err := db.SelectContext(ctx, &names, `SELECT name FROM seqs ORDER BY name`); err != nil {
		return nil, err
	}
	return names, nil
}

// Drop removes the sequence stored under name.  Dropping a name that does
// not exist is a no-op.
func Drop(ctx context.Context, db *sqlx.DB, name string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM seqs WHERE name = ?`, name)
	return err
}

// marshal encodes the elements as little endian 64 bit values.
func marshal(s *seqvec.Seq[int64]) []byte {
	out := make([]byte, 0, 8*s.Len())
	for _, v := range s.All() {
		out = binary.LittleEndian.AppendUint64(out, uint64(v))
	}
	return out
}

func unmarshal(data []byte) (*seqvec.Seq[int64], error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("seqss: corrupt sequence blob, %d bytes", len(data))
	}
	s := seqvec.New[int64]().Reserve(len(data) / 8)
	for len(data) > 0 {
		s.PushBack(int64(binary.LittleEndian.Uint64(data)))
		data = data[8:]
	}
	return s, nil
}
