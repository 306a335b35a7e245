package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	GetProductForUpdate(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	UpdateStock(ctx context.Context, productID uuid.UUID, stock int, status domain.ProductStatus) error
}
