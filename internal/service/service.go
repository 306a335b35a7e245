// Package service holds the storefront core: cart store, inventory ledger,
// checkout orchestrator and seller statistics.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
)

type Storefront struct {
	store    port.Store
	cache    port.CartCache
	logger   *zap.Logger
	currency currency.Unit

	// collapses concurrent summary loads for the same user
	group singleflight.Group
}

type Option func(*Storefront)

func WithCache(cache port.CartCache) Option {
	return func(s *Storefront) {
		s.cache = cache
	}
}

// WithCurrency sets the store currency used for empty totals.
func WithCurrency(cur currency.Unit) Option {
	return func(s *Storefront) {
		s.currency = cur
	}
}

func New(store port.Store, logger *zap.Logger, opts ...Option) *Storefront {
	s := &Storefront{
		store:    store,
		cache:    noopCache{},
		logger:   logger,
		currency: currency.USD,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	return s
}

var _ port.StorefrontService = (*Storefront)(nil)

var businessErrors = []error{
	domain.ErrNotFound,
	domain.ErrUnavailable,
	domain.ErrInsufficientStock,
	domain.ErrInvalidQuantity,
	domain.ErrNoActiveCart,
	domain.ErrEmptyCart,
	domain.ErrCurrencyMismatch,
}

func isBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail passes business outcomes through and turns everything else into a
// logged ErrTransactionFailure.
func (s *Storefront) fail(op string, err error) error {
	if isBusinessError(err) {
		s.logger.Debug("request rejected", zap.String("op", op), zap.Error(err))
		return err
	}

	s.logger.Error("transaction failure", zap.String("op", op), zap.Error(err))

	return fmt.Errorf("%w: %s: %w", domain.ErrTransactionFailure, op, err)
}

func (s *Storefront) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn("cart cache invalidation failed",
			zap.Stringer("user_id", userID), zap.Error(err))
	}
}

type noopCache struct{}

var errNoCache = errors.New("cache disabled")

func (noopCache) Get(context.Context, uuid.UUID) (domain.CartSummary, error) {
	return domain.CartSummary{}, errNoCache
}

func (noopCache) Set(context.Context, uuid.UUID, domain.CartSummary) error {
	return nil
}

func (noopCache) Delete(context.Context, uuid.UUID) error {
	return nil
}
