package repository_test

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestGetOrCreateActiveCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		userID    uuid.UUID
		wantError string
	}{
		{
			name:   "create cart: ok",
			userID: uuid.New(),
		},
		{
			name:      "empty user ID: error",
			userID:    uuid.Nil,
			wantError: "userID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart, err := suite.store.Carts().GetOrCreateActiveCart(ctx, tt.userID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.userID, cart.UserID)
			assert.Equal(t, domain.CartStatusActive, cart.Status)

			again, err := suite.store.Carts().GetOrCreateActiveCart(ctx, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, cart.ID, again.ID)
		})
	}
}

func (suite *repositorySuite) TestGetOrCreateActiveCart_ReactivatesOrderedCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, carts.SetStatus(ctx, cart.ID, domain.CartStatusOrdered))

	_, err = carts.GetActiveCartForUpdate(ctx, cart.UserID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	reactivated, err := carts.GetOrCreateActiveCart(ctx, cart.UserID)
	require.NoError(t, err)

	assert.Equal(t, cart.ID, reactivated.ID)
	assert.Equal(t, domain.CartStatusActive, reactivated.Status)
}

func (suite *repositorySuite) TestGetCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	_, err := carts.GetCart(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = carts.GetCart(ctx, uuid.Nil)
	require.EqualError(t, err, "userID is empty")

	product := suite.createProduct(randomProduct())

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	item := domain.CartItem{
		CartID:       cart.ID,
		ProductID:    product.ID,
		ProductTitle: product.Title,
		Quantity:     2,
		Price:        product.Price,
	}
	_, err = carts.InsertItem(ctx, item)
	require.NoError(t, err)

	got, err := carts.GetCart(ctx, cart.UserID)
	require.NoError(t, err)

	assert.Equal(t, cart.ID, got.ID)
	require.Len(t, got.Items, 1)
	assertCartItem(t, item, got.Items[0])
}

func (suite *repositorySuite) TestGetItemByProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	product := suite.createProduct(randomProduct())

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	_, found, err := carts.GetItemByProduct(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, found)

	inserted, err := carts.InsertItem(ctx, domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	})
	require.NoError(t, err)

	item, found, err := carts.GetItemByProduct(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inserted.ID, item.ID)
	assert.Equal(t, 1, item.Quantity)
}

func (suite *repositorySuite) TestInsertItem_DuplicateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	product := suite.createProduct(randomProduct())

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	item := domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	}

	_, err = carts.InsertItem(ctx, item)
	require.NoError(t, err)

	_, err = carts.InsertItem(ctx, item)
	require.Error(t, err)
}

func (suite *repositorySuite) TestUpdateItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	product := suite.createProduct(randomProduct())

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	item, err := carts.InsertItem(ctx, domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	})
	require.NoError(t, err)

	item.Quantity = 5
	item.Price = randomMoney()

	updated, err := carts.UpdateItem(ctx, item)
	require.NoError(t, err)
	assertCartItem(t, item, updated)

	_, err = carts.UpdateItem(ctx, domain.CartItem{ID: uuid.New(), Quantity: 1, Price: product.Price})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	product := suite.createProduct(randomProduct())

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	item, err := carts.InsertItem(ctx, domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	})
	require.NoError(t, err)

	userID, err := carts.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.UserID, userID)

	_, err = carts.DeleteItem(ctx, item.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestClearItemsAndListCheckoutLines() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	carts := suite.store.Carts()

	cart, err := carts.GetOrCreateActiveCart(ctx, uuid.New())
	require.NoError(t, err)

	var productIDs []uuid.UUID
	for range 3 {
		product := randomProduct()
		product.SellerID = uuid.NullUUID{UUID: uuid.New(), Valid: true}
		suite.createProduct(product)
		productIDs = append(productIDs, product.ID)

		_, err := carts.InsertItem(ctx, domain.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.Price,
		})
		require.NoError(t, err)
	}

	sort.Slice(productIDs, func(i, j int) bool {
		return productIDs[i].String() < productIDs[j].String()
	})

	lines, err := carts.ListCheckoutLines(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	for i, line := range lines {
		assert.Equal(t, productIDs[i], line.Product.ID)
		assert.Equal(t, line.Item.ProductID, line.Product.ID)
		assert.True(t, line.Product.SellerID.Valid)
		assert.Equal(t, domain.ProductStatusActive, line.Product.Status)
	}

	deleted, err := carts.ClearItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	items, err := carts.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func (suite *repositorySuite) TestSetStatus_NotFound() {
	err := suite.store.Carts().SetStatus(suite.T().Context(), uuid.New(), domain.CartStatusOrdered)
	require.ErrorIs(suite.T(), err, domain.ErrNotFound)
}
