package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CartCache interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.CartSummary, error)
	Set(ctx context.Context, userID uuid.UUID, summary domain.CartSummary) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
