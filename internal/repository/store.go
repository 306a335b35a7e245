package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

type store struct {
	q      *db.Queries
	pool   *pgxpool.Pool
	txOpts pgx.TxOptions
}

type Option func(*store)

// WithIsoLevel sets the isolation level of transactions started by InTx.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(s *store) {
		s.txOpts.IsoLevel = level
	}
}

func NewStore(pool *pgxpool.Pool, opts ...Option) port.Store {
	s := &store{
		q:    db.New(pool),
		pool: pool,
		txOpts: pgx.TxOptions{
			IsoLevel: pgx.ReadCommitted,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewStoreWithTx binds the store to a transaction owned by the caller;
// InTx then runs inline without committing.
func NewStoreWithTx(tx pgx.Tx) port.Store {
	return &store{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (s *store) InTx(ctx context.Context, fn func(tx port.Tx) error) error {
	_, err := withTx(ctx, s.pool, s.txOpts, s.q, func(q *db.Queries) (struct{}, error) {
		return struct{}{}, fn(&txRepos{q: q})
	})
	return err
}

func (s *store) Carts() port.CartRepository {
	return &cartRepository{q: s.q}
}

func (s *store) Products() port.ProductRepository {
	return &productRepository{q: s.q}
}

func (s *store) Orders() port.OrderRepository {
	return &orderRepository{q: s.q}
}

func (s *store) Sellers() port.SellerRepository {
	return &sellerRepository{q: s.q}
}

type txRepos struct {
	q *db.Queries
}

func (t *txRepos) Carts() port.CartRepository {
	return &cartRepository{q: t.q}
}

func (t *txRepos) Products() port.ProductRepository {
	return &productRepository{q: t.q}
}

func (t *txRepos) Orders() port.OrderRepository {
	return &orderRepository{q: t.q}
}

func (t *txRepos) Sellers() port.SellerRepository {
	return &sellerRepository{q: t.q}
}
