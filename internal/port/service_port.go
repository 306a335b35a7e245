package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

// StorefrontService is what the request layer calls. userID is trusted to
// be authenticated already.
type StorefrontService interface {
	AddOrMergeItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (domain.AddItemResult, error)
	RemoveCartItem(ctx context.Context, cartItemID uuid.UUID) error
	GetCartSummary(ctx context.Context, userID uuid.UUID) (domain.CartSummary, error)
	Checkout(ctx context.Context, userID uuid.UUID) (domain.CheckoutResult, error)
	GetSellerStats(ctx context.Context, sellerID uuid.UUID) (domain.SellerDashboard, error)
}
