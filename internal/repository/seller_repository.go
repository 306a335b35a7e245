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

type sellerRepository struct {
	q *db.Queries
}

func (r *sellerRepository) CreateProfile(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("userID is empty")
	}

	if err := r.q.CreateSellerProfile(ctx, userID); err != nil {
		return fmt.Errorf("q.CreateSellerProfile: %w", err)
	}

	return nil
}

func (r *sellerRepository) GetProfile(ctx context.Context, userID uuid.UUID) (domain.SellerProfile, error) {
	row, err := r.q.GetSellerProfile(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SellerProfile{}, fmt.Errorf("seller profile[%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.SellerProfile{}, fmt.Errorf("q.GetSellerProfile: %w", err)
	}

	return domain.SellerProfile{
		UserID:      row.UserID,
		TotalSales:  row.TotalSales,
		TotalOrders: int(row.TotalOrders),
		Rating:      row.Rating,
		RatingCount: int(row.RatingCount),
	}, nil
}

func (r *sellerRepository) IncrementStats(ctx context.Context, delta domain.SellerStatsDelta) error {
	if delta.SellerID == uuid.Nil {
		return fmt.Errorf("sellerID is empty")
	}

	rowsAffected, err := r.q.IncrementSellerStats(ctx, db.IncrementSellerStatsParams{
		UserID:      delta.SellerID,
		TotalSales:  delta.Sales,
		TotalOrders: int32(delta.Orders),
	})
	if err != nil {
		return fmt.Errorf("q.IncrementSellerStats: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("seller[%s]: %w", delta.SellerID, domain.ErrSellerProfileMissing)
	}

	return nil
}

func (r *sellerRepository) CountProducts(ctx context.Context, sellerID uuid.UUID) (int, error) {
	count, err := r.q.CountSellerProducts(ctx, uuid.NullUUID{UUID: sellerID, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("q.CountSellerProducts: %w", err)
	}

	return int(count), nil
}

func (r *sellerRepository) ListRecentOrderLines(ctx context.Context, sellerID uuid.UUID, limit int) ([]domain.SellerOrderLine, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	rows, err := r.q.ListRecentSellerOrderLines(ctx, db.ListRecentSellerOrderLinesParams{
		SellerID: uuid.NullUUID{UUID: sellerID, Valid: true},
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListRecentSellerOrderLines: %w", err)
	}

	lines := make([]domain.SellerOrderLine, 0, len(rows))
	for _, row := range rows {
		line, err := mapSellerOrderLineToDomain(sellerID, row)
		if err != nil {
			return nil, fmt.Errorf("mapSellerOrderLineToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
