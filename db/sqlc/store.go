package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	UpdatePostTx(ctx context.Context, arg UpdatePostTxParams) (Post, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes every connection of the pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}
