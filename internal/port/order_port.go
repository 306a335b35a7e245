package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, userID uuid.UUID) (domain.Order, error)
	AddLine(ctx context.Context, line domain.OrderLine) (domain.OrderLine, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
}

type SellerRepository interface {
	CreateProfile(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (domain.SellerProfile, error)
	IncrementStats(ctx context.Context, delta domain.SellerStatsDelta) error

	CountProducts(ctx context.Context, sellerID uuid.UUID) (int, error)
	// ListRecentOrderLines returns the newest lines first.
	ListRecentOrderLines(ctx context.Context, sellerID uuid.UUID, limit int) ([]domain.SellerOrderLine, error)
}
