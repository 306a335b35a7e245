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

type orderRepository struct {
	q *db.Queries
}

func (r *orderRepository) CreateOrder(ctx context.Context, userID uuid.UUID) (domain.Order, error) {
	if userID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.CreateOrder(ctx, db.CreateOrderParams{
		ID:     uuid.New(),
		UserID: userID,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
	}

	return domain.Order{
		ID:        row.ID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *orderRepository) AddLine(ctx context.Context, line domain.OrderLine) (domain.OrderLine, error) {
	if line.OrderID == uuid.Nil {
		return domain.OrderLine{}, fmt.Errorf("orderID is empty")
	}

	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}

	row, err := r.q.CreateOrderLine(ctx, db.CreateOrderLineParams{
		ID:            line.ID,
		OrderID:       line.OrderID,
		ProductID:     line.ProductID,
		Quantity:      int32(line.Quantity),
		PriceAmount:   line.Price.Amount,
		PriceCurrency: line.Price.Currency.String(),
	})
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("q.CreateOrderLine: %w", err)
	}

	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("mapMoneyToDomain: %w", err)
	}

	return domain.OrderLine{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		SellerID:  line.SellerID,
		Quantity:  int(row.Quantity),
		Price:     price,
	}, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	rows, err := r.q.ListOrderLines(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.ListOrderLines: %w", err)
	}

	order := domain.Order{
		ID:        row.ID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}

	for _, lineRow := range rows {
		line, err := mapOrderLineToDomain(lineRow)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderLineToDomain: %w", err)
		}

		order.Lines = append(order.Lines, line)
	}

	return order, nil
}
