package repository_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateAndGetProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		product   domain.Product
		wantError string
	}{
		{
			name:    "product without seller: ok",
			product: randomProduct(),
		},
		{
			name: "product with seller and percent discount: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.SellerID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
				p.Discount = domain.Discount{Type: domain.DiscountPercent, Value: decimal.NewFromInt(15)}
				return p
			}(),
		},
		{
			name:      "empty product ID: error",
			product:   domain.Product{},
			wantError: "productID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.store.Products().CreateProduct(ctx, tt.product)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.store.Products().GetProduct(ctx, tt.product.ID)
			require.NoError(t, err)
			assertProduct(t, tt.product, got)
		})
	}
}

func (suite *repositorySuite) TestGetProduct_NotFound() {
	t := suite.T()
	productID := uuid.New()

	_, err := suite.store.Products().GetProduct(t.Context(), productID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var productErr *domain.ProductError
	require.True(t, errors.As(err, &productErr))
	assert.Equal(t, productID, productErr.ProductID)
}

func (suite *repositorySuite) TestUpdateStock() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	product.StockQuantity = 3
	suite.createProduct(product)

	err := suite.store.InTx(ctx, func(tx port.Tx) error {
		locked, err := tx.Products().GetProductForUpdate(ctx, product.ID)
		if err != nil {
			return err
		}

		return tx.Products().UpdateStock(ctx, locked.ID, 0, domain.ProductStatusOutOfStock)
	})
	require.NoError(t, err)

	got, err := suite.store.Products().GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.StockQuantity)
	assert.Equal(t, domain.ProductStatusOutOfStock, got.Status)

	err = suite.store.Products().UpdateStock(ctx, product.ID, -1, domain.ProductStatusActive)
	require.EqualError(t, err, "stock[-1] is negative")

	err = suite.store.Products().UpdateStock(ctx, uuid.New(), 1, domain.ProductStatusActive)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
