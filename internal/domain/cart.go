package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CartStatus string

const (
	CartStatusActive  CartStatus = "ACTIVE"
	CartStatusOrdered CartStatus = "ORDERED"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 100
)

type Cart struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status CartStatus
	Items  []CartItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID           uuid.UUID
	CartID       uuid.UUID
	ProductID    uuid.UUID
	ProductTitle string
	Quantity     int
	// Price is the unit price frozen when the item was added or last merged.
	Price Money

	CreatedAt time.Time
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

type CartSummary struct {
	CartID     uuid.UUID
	Status     CartStatus
	Items      []CartItem
	ItemCount  int
	TotalItems int
	TotalPrice Money
}

type AddItemResult struct {
	Item    CartItem
	Summary CartSummary
	// Merged is true when the quantity was added to an existing line.
	Merged bool
}

func ValidateQuantity(quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return &QuantityError{Quantity: quantity}
	}
	return nil
}

// Summarize recomputes totals from the items; the price total is rounded.
func Summarize(cart Cart, zero Money) (CartSummary, error) {
	summary := CartSummary{
		CartID:     cart.ID,
		Status:     cart.Status,
		Items:      cart.Items,
		ItemCount:  len(cart.Items),
		TotalPrice: zero,
	}

	for _, item := range cart.Items {
		total, err := summary.TotalPrice.Add(item.LineTotal())
		if err != nil {
			return CartSummary{}, fmt.Errorf("item[%s]: %w", item.ID, err)
		}

		summary.TotalPrice = total
		summary.TotalItems += item.Quantity
	}

	summary.TotalPrice = summary.TotalPrice.Rounded()

	return summary, nil
}
