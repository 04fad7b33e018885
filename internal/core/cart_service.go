package core

import (
	"context"
	"errors"
	"fmt"

	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/models"
)

// ErrCartItemNotFound is returned when a cart item does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// cartService implements the CartService interface.
type cartService struct {
	cartRepo db.CartRepository
}

// NewCartService creates a new CartService instance.
func NewCartService(cartRepo db.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

// Add stores a new cart item for its owner.
func (s *cartService) Add(ctx context.Context, req models.AddCartItemRequest) (*models.CartItem, error) {
	item := &models.CartItem{
		Email:   req.Email,
		ItemRef: req.ItemRef,
		Price:   req.Price,
	}
	if _, err := s.cartRepo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item for '%s': %w", req.Email, err)
	}
	return item, nil
}

// ListByOwner returns the cart items belonging to email. An empty email
// yields an empty list, not an error.
func (s *cartService) ListByOwner(ctx context.Context, email string) ([]*models.CartItem, error) {
	if email == "" {
		return []*models.CartItem{}, nil
	}
	items, err := s.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items for '%s': %w", email, err)
	}
	return items, nil
}

// Remove deletes a single cart item by ID.
func (s *cartService) Remove(ctx context.Context, id string) error {
	if err := s.cartRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrCartItemNotFound, id)
		}
		return fmt.Errorf("failed to remove cart item '%s': %w", id, err)
	}
	return nil
}
