package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"myceliumweb.org/seqvec/seqss"
)

// Context returns a context carrying a development logger.  It is canceled
// when the test ends.
func Context(t testing.TB) context.Context {
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx, cf := context.WithCancel(logctx.NewContext(context.Background(), l))
	t.Cleanup(cf)
	return ctx
}

// NewDB returns an in-memory database with the sequence schema applied.
// NewDB adds db.Close for Cleanup.
func NewDB(t testing.TB) *sqlx.DB {
	db, err := seqss.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, seqss.Setup(Context(t), db))
	return db
}
