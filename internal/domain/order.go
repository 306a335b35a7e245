package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Lines  []OrderLine

	CreatedAt time.Time
}

type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	SellerID  uuid.NullUUID
	Quantity  int
	Price     Money
}

func (l OrderLine) LineTotal() Money {
	return l.Price.Mul(l.Quantity)
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	CreatedAt   time.Time
	TotalAmount Money
	ItemCount   int
	TotalItems  int
	Lines       []OrderLine
}

// CheckoutLine is a cart item paired with the locked product row it buys.
type CheckoutLine struct {
	Item    CartItem
	Product Product
}
