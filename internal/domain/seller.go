package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SellerProfile struct {
	UserID      uuid.UUID
	TotalSales  decimal.Decimal
	TotalOrders int
	Rating      decimal.Decimal
	RatingCount int
}

// SellerStatsDelta is the increment one checkout applies to a seller.
type SellerStatsDelta struct {
	SellerID uuid.UUID
	Sales    decimal.Decimal
	Orders   int
}

// RecentOrdersLimit caps the order lines shown on a seller dashboard.
const RecentOrdersLimit = 10

// SellerOrderLine is an order line for one of the seller's products, with
// the buyer and order time attached.
type SellerOrderLine struct {
	OrderLine
	BuyerID      uuid.UUID
	ProductTitle string
	OrderedAt    time.Time
}

type SellerDashboard struct {
	Profile       SellerProfile
	TotalProducts int
	RecentOrders  []SellerOrderLine
}
