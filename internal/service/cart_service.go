package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/pricing"
	"go.uber.org/zap"
)

func (s *Storefront) AddOrMergeItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (domain.AddItemResult, error) {
	const op = "AddOrMergeItem"

	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.AddItemResult{}, s.fail(op, err)
	}

	var result domain.AddItemResult

	err := s.store.InTx(ctx, func(tx port.Tx) error {
		cart, err := tx.Carts().GetOrCreateActiveCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("carts.GetOrCreateActiveCart: %w", err)
		}

		product, err := tx.Products().GetProductForUpdate(ctx, productID)
		if err != nil {
			return fmt.Errorf("products.GetProductForUpdate: %w", err)
		}

		existing, found, err := tx.Carts().GetItemByProduct(ctx, cart.ID, product.ID)
		if err != nil {
			return fmt.Errorf("carts.GetItemByProduct: %w", err)
		}

		var inCart int
		if found {
			inCart = existing.Quantity
		}

		if err := product.CheckAvailable(quantity, inCart); err != nil {
			return err
		}

		if err := product.CheckCurrency(s.currency); err != nil {
			return err
		}

		price := pricing.ProductPrice(product)

		if found {
			existing.Quantity += quantity
			existing.Price = price
			existing.ProductTitle = product.Title

			result.Item, err = tx.Carts().UpdateItem(ctx, existing)
			if err != nil {
				return fmt.Errorf("carts.UpdateItem: %w", err)
			}
			result.Merged = true
		} else {
			result.Item, err = tx.Carts().InsertItem(ctx, domain.CartItem{
				CartID:       cart.ID,
				ProductID:    product.ID,
				ProductTitle: product.Title,
				Quantity:     quantity,
				Price:        price,
			})
			if err != nil {
				return fmt.Errorf("carts.InsertItem: %w", err)
			}
		}

		// a summary failure rolls the line back
		result.Summary, err = s.summarize(ctx, tx.Carts(), userID)
		return err
	})
	if err != nil {
		return domain.AddItemResult{}, s.fail(op, err)
	}

	s.invalidate(ctx, userID)

	s.logger.Info("cart item saved",
		zap.Stringer("user_id", userID),
		zap.Stringer("product_id", productID),
		zap.Int("quantity", result.Item.Quantity),
		zap.Bool("merged", result.Merged))

	return result, nil
}

// RemoveCartItem deletes a line by id. Ownership is checked by the caller.
func (s *Storefront) RemoveCartItem(ctx context.Context, cartItemID uuid.UUID) error {
	userID, err := s.store.Carts().DeleteItem(ctx, cartItemID)
	if err != nil {
		return s.fail("RemoveCartItem", fmt.Errorf("carts.DeleteItem: %w", err))
	}

	s.invalidate(ctx, userID)

	s.logger.Info("cart item removed",
		zap.Stringer("user_id", userID),
		zap.Stringer("cart_item_id", cartItemID))

	return nil
}

func (s *Storefront) GetCartSummary(ctx context.Context, userID uuid.UUID) (domain.CartSummary, error) {
	const op = "GetCartSummary"

	summary, err := s.cache.Get(ctx, userID)
	if err == nil {
		return summary, nil
	}

	v, err, _ := s.group.Do(userID.String(), func() (any, error) {
		// joined callers must not fail when the first caller goes away
		ctx := context.WithoutCancel(ctx)

		summary, err := s.summarize(ctx, s.store.Carts(), userID)
		if err != nil {
			return domain.CartSummary{}, err
		}

		if err := s.cache.Set(ctx, userID, summary); err != nil {
			s.logger.Warn("cart cache set failed", zap.Stringer("user_id", userID), zap.Error(err))
		}

		return summary, nil
	})
	if err != nil {
		return domain.CartSummary{}, s.fail(op, err)
	}

	return v.(domain.CartSummary), nil
}

func (s *Storefront) summarize(ctx context.Context, carts port.CartRepository, userID uuid.UUID) (domain.CartSummary, error) {
	cart, err := carts.GetCart(ctx, userID)
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	summary, err := domain.Summarize(cart, domain.ZeroMoney(s.currency))
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("domain.Summarize: %w", err)
	}

	return summary, nil
}
