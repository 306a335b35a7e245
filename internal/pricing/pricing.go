// Package pricing computes effective unit prices from list prices and
// discount rules.
package pricing

import (
	"fmt"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice applies the discount to listPrice, never going below zero.
// A non-positive discount value leaves the list price as is.
func EffectivePrice(listPrice decimal.Decimal, discount domain.Discount) decimal.Decimal {
	if !discount.Value.IsPositive() {
		return listPrice
	}

	price := listPrice

	switch discount.Type {
	case domain.DiscountPercent:
		factor := decimal.NewFromInt(1).Sub(discount.Value.Div(hundred))
		price = listPrice.Mul(factor)
	case domain.DiscountAmount:
		price = listPrice.Sub(discount.Value)
	}

	if price.IsNegative() {
		return decimal.Zero
	}

	return price
}

// ProductPrice is EffectivePrice for a product, keeping its currency.
func ProductPrice(p domain.Product) domain.Money {
	return domain.Money{
		Amount:   EffectivePrice(p.Price.Amount, p.Discount),
		Currency: p.Price.Currency,
	}
}

// ParseDiscountType normalises the spellings used by the surrounding forms.
func ParseDiscountType(s string) (domain.DiscountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return domain.DiscountNone, nil
	case "percent", "percentage":
		return domain.DiscountPercent, nil
	case "amount", "fixed":
		return domain.DiscountAmount, nil
	default:
		return "", fmt.Errorf("discount type[%s] is not valid", s)
	}
}
