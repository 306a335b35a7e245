package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var errIllegalTransition = errors.New("illegal checkout transition")

func (s *Storefront) Checkout(ctx context.Context, userID uuid.UUID) (domain.CheckoutResult, error) {
	var result domain.CheckoutResult

	err := s.store.InTx(ctx, func(tx port.Tx) error {
		c := &checkout{
			tx:       tx,
			ledger:   NewLedger(tx.Products()),
			userID:   userID,
			currency: s.currency,
			state:    domain.CheckoutStateStart,
		}

		var err error
		result, err = c.run(ctx)
		return err
	})
	if err != nil {
		return domain.CheckoutResult{}, s.fail("Checkout", err)
	}

	s.invalidate(ctx, userID)

	s.logger.Info("checkout committed",
		zap.Stringer("user_id", userID),
		zap.Stringer("order_id", result.OrderID),
		zap.Int("lines", result.ItemCount),
		zap.Stringer("total", result.TotalAmount))

	return result, nil
}

// checkout walks one cart through the order states inside a single
// transaction. Any error aborts the walk and the caller rolls back.
type checkout struct {
	tx       port.Tx
	ledger   Ledger
	userID   uuid.UUID
	currency currency.Unit

	state      domain.CheckoutState
	cart       domain.Cart
	lines      []domain.CheckoutLine
	order      domain.Order
	orderLines []domain.OrderLine
	total      domain.Money
	totalItems int
}

func (c *checkout) run(ctx context.Context) (domain.CheckoutResult, error) {
	if err := c.load(ctx); err != nil {
		return domain.CheckoutResult{}, err
	}

	steps := []struct {
		next domain.CheckoutState
		fn   func(context.Context) error
	}{
		{next: domain.CheckoutStateValidated, fn: c.validate},
		{next: domain.CheckoutStateOrderCreated, fn: c.createOrder},
		{next: domain.CheckoutStateInventoryApplied, fn: c.applyInventory},
		{next: domain.CheckoutStateStatsApplied, fn: c.applyStats},
		{next: domain.CheckoutStateCartCleared, fn: c.clearCart},
		{next: domain.CheckoutStateCommitted, fn: c.markOrdered},
	}

	for _, step := range steps {
		if !domain.CanTransitionTo(c.state, step.next) {
			return domain.CheckoutResult{}, fmt.Errorf("%w: %s -> %s", errIllegalTransition, c.state, step.next)
		}

		if err := step.fn(ctx); err != nil {
			return domain.CheckoutResult{}, fmt.Errorf("checkout %s: %w", step.next, err)
		}

		c.state = step.next
	}

	if !c.state.IsTerminal() {
		return domain.CheckoutResult{}, fmt.Errorf("%w: stopped at %s", errIllegalTransition, c.state)
	}

	return domain.CheckoutResult{
		OrderID:     c.order.ID,
		CreatedAt:   c.order.CreatedAt,
		TotalAmount: c.total,
		ItemCount:   len(c.orderLines),
		TotalItems:  c.totalItems,
		Lines:       c.orderLines,
	}, nil
}

func (c *checkout) load(ctx context.Context) error {
	cart, err := c.tx.Carts().GetActiveCartForUpdate(ctx, c.userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNoActiveCart
	}
	if err != nil {
		return fmt.Errorf("carts.GetActiveCartForUpdate: %w", err)
	}

	lines, err := c.tx.Carts().ListCheckoutLines(ctx, cart.ID)
	if err != nil {
		return fmt.Errorf("carts.ListCheckoutLines: %w", err)
	}

	if len(lines) == 0 {
		return domain.ErrEmptyCart
	}

	c.cart = cart
	c.lines = lines

	return nil
}

// validate checks every line before anything is written.
func (c *checkout) validate(_ context.Context) error {
	for _, line := range c.lines {
		if err := line.Product.CheckAvailable(line.Item.Quantity, 0); err != nil {
			return err
		}
	}
	return nil
}

func (c *checkout) createOrder(ctx context.Context) error {
	order, err := c.tx.Orders().CreateOrder(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("orders.CreateOrder: %w", err)
	}

	c.order = order

	return nil
}

func (c *checkout) applyInventory(ctx context.Context) error {
	c.total = domain.ZeroMoney(c.currency)

	for _, line := range c.lines {
		orderLine, err := c.tx.Orders().AddLine(ctx, domain.OrderLine{
			OrderID:   c.order.ID,
			ProductID: line.Item.ProductID,
			SellerID:  line.Product.SellerID,
			Quantity:  line.Item.Quantity,
			Price:     line.Item.Price,
		})
		if err != nil {
			return fmt.Errorf("orders.AddLine: %w", err)
		}

		if _, err := c.ledger.Reserve(ctx, line.Item.ProductID, line.Item.Quantity); err != nil {
			return fmt.Errorf("ledger.Reserve: %w", err)
		}

		c.total, err = c.total.Add(orderLine.LineTotal())
		if err != nil {
			return fmt.Errorf("total.Add: %w", err)
		}

		c.totalItems += orderLine.Quantity
		c.orderLines = append(c.orderLines, orderLine)
	}

	c.order.Lines = c.orderLines

	return nil
}

func (c *checkout) applyStats(ctx context.Context) error {
	for _, delta := range AggregateSellerStats(c.orderLines) {
		if err := c.tx.Sellers().IncrementStats(ctx, delta); err != nil {
			return fmt.Errorf("sellers.IncrementStats: %w", err)
		}
	}
	return nil
}

func (c *checkout) clearCart(ctx context.Context) error {
	if _, err := c.tx.Carts().ClearItems(ctx, c.cart.ID); err != nil {
		return fmt.Errorf("carts.ClearItems: %w", err)
	}
	return nil
}

func (c *checkout) markOrdered(ctx context.Context) error {
	if err := c.tx.Carts().SetStatus(ctx, c.cart.ID, domain.CartStatusOrdered); err != nil {
		return fmt.Errorf("carts.SetStatus: %w", err)
	}
	return nil
}
