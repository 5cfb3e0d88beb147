package service

import (
	"context"

	"dacosta-backend/internal/domains/cart"
	"dacosta-backend/pkg/logger"
)

type cartService struct {
	repo    cart.Repository
	pricing cart.Pricing
}

func NewCartService(repo cart.Repository, pricing cart.Pricing) cart.Service {
	return &cartService{
		repo:    repo,
		pricing: pricing,
	}
}

func (s *cartService) Products(ctx context.Context) []cart.Product {
	return cart.Catalog
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*cart.View, error) {
	d, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := s.pricing.Price(d)
	return &view, nil
}

func (s *cartService) Add(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error) {
	if _, ok := cart.FindProduct(productID); !ok {
		return nil, cart.ErrUnknownProduct
	}
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}

	return s.mutate(ctx, sessionID, func(d *cart.Document) {
		d.Add(productID, quantity)
	})
}

func (s *cartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error) {
	if _, ok := cart.FindProduct(productID); !ok {
		return nil, cart.ErrUnknownProduct
	}

	return s.mutate(ctx, sessionID, func(d *cart.Document) {
		d.SetQuantity(productID, quantity)
	})
}

func (s *cartService) Remove(ctx context.Context, sessionID, productID string) (*cart.View, error) {
	return s.mutate(ctx, sessionID, func(d *cart.Document) {
		d.Remove(productID)
	})
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*cart.View, error) {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	logger.Debug("Cart cleared")

	view := s.pricing.Price(cart.NewDocument())
	return &view, nil
}

// mutate runs the load-modify-save cycle shared by every write.
func (s *cartService) mutate(ctx context.Context, sessionID string, fn func(*cart.Document)) (*cart.View, error) {
	d, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(d)

	if err := s.repo.Save(ctx, sessionID, d); err != nil {
		return nil, err
	}

	view := s.pricing.Price(d)
	return &view, nil
}
