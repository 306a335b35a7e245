package port

import "context"

// Tx groups the repositories bound to one database transaction.
type Tx interface {
	Carts() CartRepository
	Products() ProductRepository
	Orders() OrderRepository
	Sellers() SellerRepository
}

// Store hands out pool-backed repositories for single-statement work and
// runs multi-step work in a transaction.
type Store interface {
	Tx
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
