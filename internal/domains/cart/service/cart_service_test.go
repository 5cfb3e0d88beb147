package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dacosta-backend/internal/domains/cart"
)

// fakeCartRepo mimics the Redis repository: unknown sessions come back as
// fresh empty carts.
type fakeCartRepo struct {
	docs map[string]*cart.Document
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{docs: map[string]*cart.Document{}}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionID string) (*cart.Document, error) {
	d, ok := f.docs[sessionID]
	if !ok {
		return cart.NewDocument(), nil
	}
	cp := *d
	cp.Items = append([]cart.Item{}, d.Items...)
	return &cp, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, sessionID string, d *cart.Document) error {
	f.docs[sessionID] = d
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, sessionID string) error {
	delete(f.docs, sessionID)
	return nil
}

func TestCartServiceAdd(t *testing.T) {
	ctx := context.Background()
	const session = "sess-1"

	t.Run("adding the same product twice merges into one line", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo, cart.DefaultPricing())

		_, err := svc.Add(ctx, session, "classic-tee", 1)
		require.NoError(t, err)
		view, err := svc.Add(ctx, session, "classic-tee", 1)
		require.NoError(t, err)

		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)
	})

	t.Run("unknown product rejected before any write", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo, cart.DefaultPricing())

		_, err := svc.Add(ctx, session, "flux-capacitor", 1)
		assert.ErrorIs(t, err, cart.ErrUnknownProduct)
		assert.Empty(t, repo.docs)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo(), cart.DefaultPricing())

		_, err := svc.Add(ctx, session, "classic-tee", 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})
}

func TestCartServiceSetQuantity(t *testing.T) {
	ctx := context.Background()
	const session = "sess-1"
	repo := newFakeCartRepo()
	svc := NewCartService(repo, cart.DefaultPricing())

	_, err := svc.Add(ctx, session, "classic-tee", 3)
	require.NoError(t, err)

	t.Run("zero removes the line entirely", func(t *testing.T) {
		view, err := svc.SetQuantity(ctx, session, "classic-tee", 0)
		require.NoError(t, err)
		assert.Empty(t, view.Items)

		// and the persisted document holds no zero-quantity line either
		stored, err := repo.Get(ctx, session)
		require.NoError(t, err)
		assert.Empty(t, stored.Items)
	})
}

func TestCartServiceClear(t *testing.T) {
	ctx := context.Background()
	const session = "sess-1"
	repo := newFakeCartRepo()
	svc := NewCartService(repo, cart.DefaultPricing())

	_, err := svc.Add(ctx, session, "tour-hoodie", 2)
	require.NoError(t, err)

	view, err := svc.Clear(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.Equal(decimal.Zero))
	assert.NotContains(t, repo.docs, session)
}

func TestCartServiceGetNewSession(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), cart.DefaultPricing())

	view, err := svc.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Shipping.IsZero())
}
