package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const DefaultTTL = 5 * time.Minute

func NewRedisCache(client *redis.Client, baseTTL time.Duration) *RedisCache {
	if baseTTL <= 0 {
		baseTTL = DefaultTTL
	}

	return &RedisCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

// RedisCache keeps cart summaries under cart:<userID>. Entries are dropped
// after every cart mutation; the TTL bounds a stale write racing a delete.
type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ port.CartCache = (*RedisCache)(nil)

func (r *RedisCache) Get(ctx context.Context, userID uuid.UUID) (domain.CartSummary, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CartSummary{}, ErrCacheMiss
	}
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("client.Get: %w", err)
	}

	var cached cachedSummary
	if err := json.Unmarshal(data, &cached); err != nil {
		return domain.CartSummary{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	summary, err := cached.toDomain()
	if err != nil {
		return domain.CartSummary{}, fmt.Errorf("cached.toDomain: %w", err)
	}

	return summary, nil
}

func (r *RedisCache) Set(ctx context.Context, userID uuid.UUID, summary domain.CartSummary) error {
	data, err := json.Marshal(fromDomain(summary))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	// spread expirations so entries written together do not expire together
	jitter := rand.N(r.baseTTL/5 + 1)

	if err := r.client.Set(ctx, cacheKey(userID), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (r *RedisCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

func cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}

// currency.Unit has no JSON form, so the cached shape is kept separate.
type cachedMoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type cachedItem struct {
	ID           uuid.UUID   `json:"id"`
	CartID       uuid.UUID   `json:"cart_id"`
	ProductID    uuid.UUID   `json:"product_id"`
	ProductTitle string      `json:"product_title"`
	Quantity     int         `json:"quantity"`
	Price        cachedMoney `json:"price"`
	CreatedAt    time.Time   `json:"created_at"`
}

type cachedSummary struct {
	CartID     uuid.UUID    `json:"cart_id"`
	Status     string       `json:"status"`
	Items      []cachedItem `json:"items"`
	ItemCount  int          `json:"item_count"`
	TotalItems int          `json:"total_items"`
	TotalPrice cachedMoney  `json:"total_price"`
}

func fromMoney(m domain.Money) cachedMoney {
	return cachedMoney{Amount: m.Amount, Currency: m.Currency.String()}
}

func (m cachedMoney) toDomain() (domain.Money, error) {
	cur, err := currency.ParseISO(m.Currency)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", m.Currency, err)
	}

	return domain.Money{Amount: m.Amount, Currency: cur}, nil
}

func fromDomain(s domain.CartSummary) cachedSummary {
	items := make([]cachedItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, cachedItem{
			ID:           item.ID,
			CartID:       item.CartID,
			ProductID:    item.ProductID,
			ProductTitle: item.ProductTitle,
			Quantity:     item.Quantity,
			Price:        fromMoney(item.Price),
			CreatedAt:    item.CreatedAt,
		})
	}

	return cachedSummary{
		CartID:     s.CartID,
		Status:     string(s.Status),
		Items:      items,
		ItemCount:  s.ItemCount,
		TotalItems: s.TotalItems,
		TotalPrice: fromMoney(s.TotalPrice),
	}
}

func (c cachedSummary) toDomain() (domain.CartSummary, error) {
	total, err := c.TotalPrice.toDomain()
	if err != nil {
		return domain.CartSummary{}, err
	}

	var items []domain.CartItem
	for _, item := range c.Items {
		price, err := item.Price.toDomain()
		if err != nil {
			return domain.CartSummary{}, err
		}

		items = append(items, domain.CartItem{
			ID:           item.ID,
			CartID:       item.CartID,
			ProductID:    item.ProductID,
			ProductTitle: item.ProductTitle,
			Quantity:     item.Quantity,
			Price:        price,
			CreatedAt:    item.CreatedAt,
		})
	}

	return domain.CartSummary{
		CartID:     c.CartID,
		Status:     domain.CartStatus(c.Status),
		Items:      items,
		ItemCount:  c.ItemCount,
		TotalItems: c.TotalItems,
		TotalPrice: total,
	}, nil
}
