package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	// GetOrCreateActiveCart returns the user's cart row, creating it or
	// flipping it back to ACTIVE as needed. The row stays locked until the
	// surrounding transaction ends.
	GetOrCreateActiveCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	// GetCart returns the user's cart with its items regardless of status.
	GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	GetActiveCartForUpdate(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	SetStatus(ctx context.Context, cartID uuid.UUID, status domain.CartStatus) error

	GetItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (domain.CartItem, bool, error)
	InsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	UpdateItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error)
	// DeleteItem removes a single line and returns the owner of its cart.
	DeleteItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error)

	// ListCheckoutLines loads every line with a locked product snapshot,
	// ordered by product id.
	ListCheckoutLines(ctx context.Context, cartID uuid.UUID) ([]domain.CheckoutLine, error)
}
