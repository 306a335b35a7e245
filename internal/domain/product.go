package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "ACTIVE"
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

type Product struct {
	ID            uuid.UUID
	Title         string
	Price         Money
	Discount      Discount
	StockQuantity int
	Status        ProductStatus
	SellerID      uuid.NullUUID
}

type ReserveResult struct {
	NewStock      int
	StatusChanged bool
}

// CheckAvailable reports whether quantity units can be sold right now.
// inCart is the quantity already held by the caller's cart line, if any.
func (p Product) CheckAvailable(quantity, inCart int) error {
	if p.Status != ProductStatusActive {
		return &ProductError{
			Kind:        ErrUnavailable,
			ProductID:   p.ID,
			ProductName: p.Title,
			Status:      p.Status,
		}
	}

	if inCart+quantity > p.StockQuantity {
		return &ProductError{
			Kind:        ErrInsufficientStock,
			ProductID:   p.ID,
			ProductName: p.Title,
			Status:      p.Status,
			Requested:   quantity,
			InCart:      inCart,
			Available:   p.StockQuantity,
		}
	}

	return nil
}

// CheckCurrency rejects a product that cannot be summed into a cart priced
// in the store currency.
func (p Product) CheckCurrency(store currency.Unit) error {
	if p.Price.Currency == store {
		return nil
	}

	return &ProductError{
		Kind:          ErrCurrencyMismatch,
		ProductID:     p.ID,
		ProductName:   p.Title,
		Status:        p.Status,
		Currency:      p.Price.Currency.String(),
		StoreCurrency: store.String(),
	}
}

// Reserve decrements stock in memory, flipping the status to OUT_OF_STOCK
// when the last unit goes. The caller persists the result.
func (p *Product) Reserve(quantity int) (ReserveResult, error) {
	if err := p.CheckAvailable(quantity, 0); err != nil {
		return ReserveResult{}, err
	}

	p.StockQuantity -= quantity

	var changed bool
	if p.StockQuantity == 0 {
		p.Status = ProductStatusOutOfStock
		changed = true
	}

	return ReserveResult{
		NewStock:      p.StockQuantity,
		StatusChanged: changed,
	}, nil
}
