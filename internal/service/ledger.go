package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// Ledger decrements stock on locked product rows. It must be built from
// repositories bound to an open transaction.
type Ledger struct {
	products port.ProductRepository
}

func NewLedger(products port.ProductRepository) Ledger {
	return Ledger{products: products}
}

func (l Ledger) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (domain.ReserveResult, error) {
	product, err := l.products.GetProductForUpdate(ctx, productID)
	if err != nil {
		return domain.ReserveResult{}, fmt.Errorf("products.GetProductForUpdate: %w", err)
	}

	result, err := product.Reserve(quantity)
	if err != nil {
		return domain.ReserveResult{}, err
	}

	if err := l.products.UpdateStock(ctx, product.ID, result.NewStock, product.Status); err != nil {
		return domain.ReserveResult{}, fmt.Errorf("products.UpdateStock: %w", err)
	}

	return result, nil
}
