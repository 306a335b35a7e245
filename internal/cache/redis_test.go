package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisCache(client, time.Minute), mr
}

func testSummary() domain.CartSummary {
	cartID := uuid.New()
	price := domain.Money{Amount: decimal.RequireFromString("10.995"), Currency: currency.EUR}

	return domain.CartSummary{
		CartID: cartID,
		Status: domain.CartStatusActive,
		Items: []domain.CartItem{
			{
				ID:           uuid.New(),
				CartID:       cartID,
				ProductID:    uuid.New(),
				ProductTitle: "Mug",
				Quantity:     2,
				Price:        price,
				CreatedAt:    time.Now().UTC().Truncate(time.Second),
			},
		},
		ItemCount:  1,
		TotalItems: 2,
		TotalPrice: domain.Money{Amount: decimal.RequireFromString("21.99"), Currency: currency.EUR},
	}
}

func TestSetThenGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := t.Context()

	userID := uuid.New()
	summary := testSummary()

	require.NoError(t, cache.Set(ctx, userID, summary))
	assert.True(t, mr.Exists(cacheKey(userID)))

	got, err := cache.Get(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, summary.CartID, got.CartID)
	assert.Equal(t, summary.TotalItems, got.TotalItems)
	assert.True(t, summary.TotalPrice.Amount.Equal(got.TotalPrice.Amount))
	assert.Equal(t, currency.EUR, got.TotalPrice.Currency)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Mug", got.Items[0].ProductTitle)
	assert.True(t, decimal.RequireFromString("10.995").Equal(got.Items[0].Price.Amount))
	assert.True(t, summary.Items[0].CreatedAt.Equal(got.Items[0].CreatedAt))
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestGet_CorruptedEntry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	userID := uuid.New()

	require.NoError(t, mr.Set(cacheKey(userID), "{not json"))

	_, err := cache.Get(t.Context(), userID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSet_TTLWithJitter(t *testing.T) {
	cache, mr := setupTestRedis(t)
	userID := uuid.New()

	require.NoError(t, cache.Set(t.Context(), userID, testSummary()))

	ttl := mr.TTL(cacheKey(userID))
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.LessOrEqual(t, ttl, time.Minute+time.Minute/5)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(cacheKey(userID)))
}

func TestDelete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := t.Context()
	userID := uuid.New()

	require.NoError(t, cache.Set(ctx, userID, testSummary()))
	require.NoError(t, cache.Delete(ctx, userID))
	assert.False(t, mr.Exists(cacheKey(userID)))

	// deleting a missing key is fine
	require.NoError(t, cache.Delete(ctx, userID))
}

func TestRedisDown(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Close()

	_, err := cache.Get(t.Context(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
