package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// AggregateSellerStats groups order lines by seller. Every line counts as
// one order for its seller. Lines without a seller are skipped.
func AggregateSellerStats(lines []domain.OrderLine) []domain.SellerStatsDelta {
	bySeller := make(map[uuid.UUID]*domain.SellerStatsDelta)

	for _, line := range lines {
		if !line.SellerID.Valid {
			continue
		}

		delta, ok := bySeller[line.SellerID.UUID]
		if !ok {
			delta = &domain.SellerStatsDelta{
				SellerID: line.SellerID.UUID,
				Sales:    decimal.Zero,
			}
			bySeller[line.SellerID.UUID] = delta
		}

		delta.Sales = delta.Sales.Add(line.LineTotal().Amount)
		delta.Orders++
	}

	deltas := make([]domain.SellerStatsDelta, 0, len(bySeller))
	for _, delta := range bySeller {
		deltas = append(deltas, *delta)
	}

	// stable update order keeps row locks ordered across checkouts
	slices.SortFunc(deltas, func(a, b domain.SellerStatsDelta) int {
		return strings.Compare(a.SellerID.String(), b.SellerID.String())
	})

	return deltas
}

// GetSellerStats builds the seller dashboard. NotFound when the seller has
// no profile.
func (s *Storefront) GetSellerStats(ctx context.Context, sellerID uuid.UUID) (domain.SellerDashboard, error) {
	const op = "GetSellerStats"

	sellers := s.store.Sellers()

	profile, err := sellers.GetProfile(ctx, sellerID)
	if err != nil {
		return domain.SellerDashboard{}, s.fail(op, fmt.Errorf("sellers.GetProfile: %w", err))
	}

	dashboard := domain.SellerDashboard{Profile: profile}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := sellers.CountProducts(gctx, sellerID)
		if err != nil {
			return fmt.Errorf("sellers.CountProducts: %w", err)
		}
		dashboard.TotalProducts = count
		return nil
	})

	g.Go(func() error {
		lines, err := sellers.ListRecentOrderLines(gctx, sellerID, domain.RecentOrdersLimit)
		if err != nil {
			return fmt.Errorf("sellers.ListRecentOrderLines: %w", err)
		}
		dashboard.RecentOrders = lines
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.SellerDashboard{}, s.fail(op, err)
	}

	return dashboard, nil
}
