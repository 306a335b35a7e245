package repository_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateOrderWithLines() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	orders := suite.store.Orders()

	product := randomProduct()
	product.SellerID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	suite.createProduct(product)

	userID := uuid.New()

	order, err := orders.CreateOrder(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.False(t, order.CreatedAt.IsZero())

	line, err := orders.AddLine(ctx, domain.OrderLine{
		OrderID:   order.ID,
		ProductID: product.ID,
		SellerID:  product.SellerID,
		Quantity:  2,
		Price:     product.Price,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, line.ID)

	got, err := orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)

	assert.Equal(t, line.ID, got.Lines[0].ID)
	assert.Equal(t, product.SellerID, got.Lines[0].SellerID)
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.True(t, product.Price.Amount.Equal(got.Lines[0].Price.Amount))

	_, err = orders.CreateOrder(ctx, uuid.Nil)
	require.EqualError(t, err, "userID is empty")

	_, err = orders.GetOrder(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestInTx_RollsBackOnError() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	var orderID uuid.UUID
	errBoom := errors.New("boom")

	err := suite.store.InTx(ctx, func(tx port.Tx) error {
		order, err := tx.Orders().CreateOrder(ctx, uuid.New())
		if err != nil {
			return err
		}
		orderID = order.ID

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = suite.store.Orders().GetOrder(ctx, orderID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestSellerProfile() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sellers := suite.store.Sellers()

	sellerID := uuid.New()

	_, err := sellers.GetProfile(ctx, sellerID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = sellers.IncrementStats(ctx, domain.SellerStatsDelta{SellerID: sellerID, Sales: decimal.NewFromInt(1), Orders: 1})
	require.ErrorIs(t, err, domain.ErrSellerProfileMissing)

	require.NoError(t, sellers.CreateProfile(ctx, sellerID))

	for range 2 {
		err = sellers.IncrementStats(ctx, domain.SellerStatsDelta{
			SellerID: sellerID,
			Sales:    decimal.RequireFromString("12.50"),
			Orders:   2,
		})
		require.NoError(t, err)
	}

	profile, err := sellers.GetProfile(ctx, sellerID)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("25").Equal(profile.TotalSales), profile.TotalSales.String())
	assert.Equal(t, 4, profile.TotalOrders)
	assert.Equal(t, 0, profile.RatingCount)
}

func (suite *repositorySuite) TestSellerDashboardReads() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sellers := suite.store.Sellers()
	orders := suite.store.Orders()

	sellerID := uuid.New()

	count, err := sellers.CountProducts(ctx, sellerID)
	require.NoError(t, err)
	assert.Zero(t, count)

	owned := randomProduct()
	owned.SellerID = uuid.NullUUID{UUID: sellerID, Valid: true}
	suite.createProduct(owned)
	suite.createProduct(randomProduct())

	count, err = sellers.CountProducts(ctx, sellerID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	buyerID := uuid.New()
	for range 3 {
		order, err := orders.CreateOrder(ctx, buyerID)
		require.NoError(t, err)

		_, err = orders.AddLine(ctx, domain.OrderLine{
			OrderID:   order.ID,
			ProductID: owned.ID,
			Quantity:  1,
			Price:     owned.Price,
		})
		require.NoError(t, err)
	}

	lines, err := sellers.ListRecentOrderLines(ctx, sellerID, 2)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	for _, line := range lines {
		assert.Equal(t, buyerID, line.BuyerID)
		assert.Equal(t, owned.ID, line.ProductID)
		assert.Equal(t, owned.Title, line.ProductTitle)
		assert.Equal(t, uuid.NullUUID{UUID: sellerID, Valid: true}, line.SellerID)
		assert.True(t, owned.Price.Amount.Equal(line.Price.Amount))
		assert.False(t, line.OrderedAt.IsZero())
	}
	assert.False(t, lines[1].OrderedAt.After(lines[0].OrderedAt))

	lines, err = sellers.ListRecentOrderLines(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = sellers.ListRecentOrderLines(ctx, sellerID, 0)
	require.EqualError(t, err, "limit[0] is not positive")
}

func (suite *repositorySuite) TestNewStoreWithTx_CallerOwnsTransaction() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txStore := repository.NewStoreWithTx(tx)

	var orderID uuid.UUID
	err = txStore.InTx(ctx, func(tx port.Tx) error {
		order, err := tx.Orders().CreateOrder(ctx, uuid.New())
		orderID = order.ID
		return err
	})
	require.NoError(t, err)

	// visible inside the caller's transaction only
	_, err = txStore.Orders().GetOrder(ctx, orderID)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(ctx))

	_, err = suite.store.Orders().GetOrder(ctx, orderID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
