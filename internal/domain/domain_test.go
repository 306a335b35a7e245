package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProduct_Reserve(t *testing.T) {
	tests := []struct {
		name        string
		product     domain.Product
		quantity    int
		want        domain.ReserveResult
		wantStatus  domain.ProductStatus
		wantErrKind error
	}{
		{
			name:       "partial reserve: ok",
			product:    domain.Product{StockQuantity: 5, Status: domain.ProductStatusActive},
			quantity:   2,
			want:       domain.ReserveResult{NewStock: 3},
			wantStatus: domain.ProductStatusActive,
		},
		{
			name:       "last units: out of stock",
			product:    domain.Product{StockQuantity: 2, Status: domain.ProductStatusActive},
			quantity:   2,
			want:       domain.ReserveResult{NewStock: 0, StatusChanged: true},
			wantStatus: domain.ProductStatusOutOfStock,
		},
		{
			name:        "more than stock: insufficient",
			product:     domain.Product{StockQuantity: 1, Status: domain.ProductStatusActive},
			quantity:    2,
			wantErrKind: domain.ErrInsufficientStock,
		},
		{
			name:        "out of stock product: unavailable",
			product:     domain.Product{StockQuantity: 0, Status: domain.ProductStatusOutOfStock},
			quantity:    1,
			wantErrKind: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.product

			got, err := p.Reserve(tt.quantity)
			if tt.wantErrKind != nil {
				require.ErrorIs(t, err, tt.wantErrKind)
				assert.Equal(t, tt.product, p, "product must not change on failure")
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.NewStock, p.StockQuantity)
			assert.Equal(t, tt.wantStatus, p.Status)
		})
	}
}

func TestProduct_CheckAvailable_Merge(t *testing.T) {
	p := domain.Product{
		ID:            uuid.New(),
		Title:         "Lamp",
		StockQuantity: 3,
		Status:        domain.ProductStatusActive,
	}

	require.NoError(t, p.CheckAvailable(1, 2))

	err := p.CheckAvailable(2, 2)

	var productErr *domain.ProductError
	require.True(t, errors.As(err, &productErr))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, productErr.InCart)
	assert.Equal(t, 3, productErr.Available)
	assert.EqualError(t, err, `cannot add 2 items of "Lamp": would exceed available stock (in cart: 2, available: 3)`)
}

func TestProductError_Messages(t *testing.T) {
	id := uuid.MustParse("4f6f3e7e-51c4-4d5c-9d0b-1a8ee8a3f001")

	tests := []struct {
		name string
		err  *domain.ProductError
		want string
	}{
		{
			name: "not found",
			err:  &domain.ProductError{Kind: domain.ErrNotFound, ProductID: id},
			want: "product 4f6f3e7e-51c4-4d5c-9d0b-1a8ee8a3f001 not found",
		},
		{
			name: "unavailable",
			err:  &domain.ProductError{Kind: domain.ErrUnavailable, ProductName: "Mug", Status: domain.ProductStatusOutOfStock},
			want: `product "Mug" is not available for purchase (status: OUT_OF_STOCK)`,
		},
		{
			name: "insufficient",
			err:  &domain.ProductError{Kind: domain.ErrInsufficientStock, ProductName: "Mug", Requested: 4, Available: 3},
			want: `insufficient stock for "Mug": only 3 available, but 4 requested`,
		},
		{
			name: "currency mismatch",
			err:  &domain.ProductError{Kind: domain.ErrCurrencyMismatch, ProductName: "Mug", Currency: "EUR", StoreCurrency: "USD"},
			want: `product "Mug" is priced in EUR, the store sells in USD`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestProduct_CheckCurrency(t *testing.T) {
	product := domain.Product{
		ID:    uuid.New(),
		Title: "Mug",
		Price: domain.Money{Amount: decimal.NewFromInt(5), Currency: currency.EUR},
	}

	require.NoError(t, product.CheckCurrency(currency.EUR))

	err := product.CheckCurrency(currency.USD)
	require.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	var productErr *domain.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, product.ID, productErr.ProductID)
	assert.Equal(t, "EUR", productErr.Currency)
	assert.Equal(t, "USD", productErr.StoreCurrency)
}

func TestValidateQuantity(t *testing.T) {
	for _, q := range []int{1, 50, 100} {
		assert.NoError(t, domain.ValidateQuantity(q))
	}

	for _, q := range []int{-1, 0, 101} {
		err := domain.ValidateQuantity(q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestSummarize(t *testing.T) {
	cart := domain.Cart{
		ID:     uuid.New(),
		Status: domain.CartStatusActive,
		Items: []domain.CartItem{
			{Quantity: 2, Price: usd("8.4915")},
			{Quantity: 1, Price: usd("5")},
		},
	}

	got, err := domain.Summarize(cart, domain.ZeroMoney(currency.USD))
	require.NoError(t, err)

	assert.Equal(t, cart.ID, got.CartID)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, 3, got.TotalItems)
	assert.Equal(t, "21.98", got.TotalPrice.Amount.StringFixed(2))
	assert.True(t, decimal.RequireFromString("21.98").Equal(got.TotalPrice.Amount))
}

func TestSummarize_CurrencyMismatch(t *testing.T) {
	cart := domain.Cart{
		Items: []domain.CartItem{
			{Quantity: 1, Price: domain.Money{Amount: decimal.NewFromInt(1), Currency: currency.EUR}},
		},
	}

	_, err := domain.Summarize(cart, domain.ZeroMoney(currency.USD))
	require.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "25.00 USD", usd("25").String())
	assert.Equal(t, "100 JPY", domain.Money{Amount: decimal.NewFromInt(100), Currency: currency.JPY}.String())
}

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func TestCanTransitionTo(t *testing.T) {
	path := []domain.CheckoutState{
		domain.CheckoutStateStart,
		domain.CheckoutStateValidated,
		domain.CheckoutStateOrderCreated,
		domain.CheckoutStateInventoryApplied,
		domain.CheckoutStateStatsApplied,
		domain.CheckoutStateCartCleared,
		domain.CheckoutStateCommitted,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, domain.CanTransitionTo(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
		assert.False(t, domain.CanTransitionTo(path[i+1], path[i]), "%s -> %s", path[i+1], path[i])
	}

	assert.False(t, domain.CanTransitionTo(domain.CheckoutStateStart, domain.CheckoutStateOrderCreated))
	assert.False(t, domain.CanTransitionTo(domain.CheckoutStateCommitted, domain.CheckoutStateStart))
	assert.True(t, domain.CheckoutStateCommitted.IsTerminal())
	assert.False(t, domain.CheckoutStateCartCleared.IsTerminal())
}
