// Package seqcmd implements the seqvec command line tool.
package seqcmd

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"

	"myceliumweb.org/seqvec/seqss"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "work with stored sequences and elementwise expressions",
}, map[star.Symbol]star.Command{
	"eval": eval,
	"run":  run,

	"set":  set,
	"show": show,
	"list": list,
	"drop": drop,
})

var DBParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr("seqs.db"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := seqss.OpenDB(x)
		if err != nil {
			return nil, err
		}
		if err := seqss.Setup(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	},
}
