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

type cartRepository struct {
	q *db.Queries
}

func (r *cartRepository) GetOrCreateActiveCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	if userID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.UpsertActiveCart(ctx, db.UpsertActiveCartParams{
		ID:     uuid.New(),
		UserID: userID,
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.UpsertActiveCart: %w", err)
	}

	return mapCartToDomain(row), nil
}

func (r *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	if userID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.GetCartByUser(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, fmt.Errorf("cart of user[%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCartByUser: %w", err)
	}

	cart := mapCartToDomain(row)

	cart.Items, err = r.ListItems(ctx, cart.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("r.ListItems: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) GetActiveCartForUpdate(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	if userID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.GetActiveCartForUpdate(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, fmt.Errorf("active cart of user[%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetActiveCartForUpdate: %w", err)
	}

	return mapCartToDomain(row), nil
}

func (r *cartRepository) SetStatus(ctx context.Context, cartID uuid.UUID, status domain.CartStatus) error {
	rowsAffected, err := r.q.SetCartStatus(ctx, db.SetCartStatusParams{
		ID:     cartID,
		Status: string(status),
	})
	if err != nil {
		return fmt.Errorf("q.SetCartStatus: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("cart[%s]: %w", cartID, domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) GetItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (domain.CartItem, bool, error) {
	row, err := r.q.GetCartItemByProduct(ctx, db.GetCartItemByProductParams{
		CartID:    cartID,
		ProductID: productID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CartItem{}, false, nil
	}
	if err != nil {
		return domain.CartItem{}, false, fmt.Errorf("q.GetCartItemByProduct: %w", err)
	}

	item, err := mapCartItemToDomain(row)
	if err != nil {
		return domain.CartItem{}, false, fmt.Errorf("mapCartItemToDomain: %w", err)
	}

	return item, true, nil
}

func (r *cartRepository) InsertItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	row, err := r.q.InsertCartItem(ctx, db.InsertCartItemParams{
		ID:            item.ID,
		CartID:        item.CartID,
		ProductID:     item.ProductID,
		Quantity:      int32(item.Quantity),
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.InsertCartItem: %w", err)
	}

	inserted, err := mapCartItemToDomain(row)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("mapCartItemToDomain: %w", err)
	}
	inserted.ProductTitle = item.ProductTitle

	return inserted, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	row, err := r.q.UpdateCartItem(ctx, db.UpdateCartItemParams{
		ID:            item.ID,
		Quantity:      int32(item.Quantity),
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CartItem{}, fmt.Errorf("cart item[%s]: %w", item.ID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.UpdateCartItem: %w", err)
	}

	updated, err := mapCartItemToDomain(row)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("mapCartItemToDomain: %w", err)
	}
	updated.ProductTitle = item.ProductTitle

	return updated, nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	rows, err := r.q.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCartItems: %w", err)
	}

	items, err := mapListCartItemsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListCartItemsRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	userID, err := r.q.DeleteCartItem(ctx, itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("cart item[%s]: %w", itemID, domain.ErrNotFound)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	return userID, nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	rowsAffected, err := r.q.DeleteCartItems(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteCartItems: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) ListCheckoutLines(ctx context.Context, cartID uuid.UUID) ([]domain.CheckoutLine, error) {
	rows, err := r.q.ListCheckoutLines(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCheckoutLines: %w", err)
	}

	lines := make([]domain.CheckoutLine, 0, len(rows))
	for _, row := range rows {
		line, err := mapCheckoutLineRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCheckoutLineRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
