package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrNoActiveCart       = errors.New("no active cart found for this user")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrTransactionFailure = errors.New("transaction failure")
)

// ProductError carries enough context to render a user-facing message.
type ProductError struct {
	Kind          error
	ProductID     uuid.UUID
	ProductName   string
	Status        ProductStatus
	Requested     int
	InCart        int
	Available     int
	Currency      string
	StoreCurrency string
}

func (e *ProductError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrNotFound):
		return fmt.Sprintf("product %s not found", e.ProductID)
	case errors.Is(e.Kind, ErrUnavailable):
		return fmt.Sprintf("product %q is not available for purchase (status: %s)", e.ProductName, e.Status)
	case errors.Is(e.Kind, ErrInsufficientStock) && e.InCart > 0:
		return fmt.Sprintf("cannot add %d items of %q: would exceed available stock (in cart: %d, available: %d)",
			e.Requested, e.ProductName, e.InCart, e.Available)
	case errors.Is(e.Kind, ErrInsufficientStock):
		return fmt.Sprintf("insufficient stock for %q: only %d available, but %d requested",
			e.ProductName, e.Available, e.Requested)
	case errors.Is(e.Kind, ErrCurrencyMismatch):
		return fmt.Sprintf("product %q is priced in %s, the store sells in %s",
			e.ProductName, e.Currency, e.StoreCurrency)
	default:
		return fmt.Sprintf("product %q: %v", e.ProductName, e.Kind)
	}
}

func (e *ProductError) Unwrap() error {
	return e.Kind
}

type QuantityError struct {
	Quantity int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity must be a number between %d and %d, got %d", MinItemQuantity, MaxItemQuantity, e.Quantity)
}

func (e *QuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// ErrSellerProfileMissing is not a business outcome: a product points at a
// seller that never got a profile.
var ErrSellerProfileMissing = errors.New("seller profile missing")
