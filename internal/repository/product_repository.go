package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
)

type productRepository struct {
	q *db.Queries
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	discountType := product.Discount.Type
	if discountType == "" {
		discountType = domain.DiscountNone
	}

	status := product.Status
	if status == "" {
		status = domain.ProductStatusActive
	}

	if err := r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            product.ID,
		SellerID:      product.SellerID,
		Title:         product.Title,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		DiscountType:  string(discountType),
		DiscountValue: product.Discount.Value,
		StockQuantity: int32(product.StockQuantity),
		Status:        string(status),
	}); err != nil {
		return fmt.Errorf("q.CreateProduct: %w", err)
	}

	return nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, notFoundProduct(productID)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row)
}

func (r *productRepository) GetProductForUpdate(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProductForUpdate(ctx, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, notFoundProduct(productID)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProductForUpdate: %w", err)
	}

	return mapProductToDomain(db.GetProductRow(row))
}

func (r *productRepository) UpdateStock(ctx context.Context, productID uuid.UUID, stock int, status domain.ProductStatus) error {
	if stock < 0 {
		return fmt.Errorf("stock[%d] is negative", stock)
	}

	rowsAffected, err := r.q.UpdateProductStock(ctx, db.UpdateProductStockParams{
		ID:            productID,
		StockQuantity: int32(stock),
		Status:        string(status),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateProductStock: %w", err)
	}

	if rowsAffected == 0 {
		return notFoundProduct(productID)
	}

	return nil
}

func notFoundProduct(productID uuid.UUID) error {
	return &domain.ProductError{
		Kind:      domain.ErrNotFound,
		ProductID: productID,
	}
}
