package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Mul returns the line total for qty units priced at m.
func (m Money) Mul(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}

	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

// Rounded applies the currency's standard scale. Only used at summary
// boundaries, stored prices keep full precision.
func (m Money) Rounded() Money {
	scale, _ := currency.Standard.Rounding(m.Currency)

	return Money{
		Amount:   m.Amount.Round(int32(scale)),
		Currency: m.Currency,
	}
}

func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return m.Amount.StringFixed(int32(scale)) + " " + m.Currency.String()
}
