package core

import (
	"context"

	"parlour-backend-go/internal/models"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// Register creates a user record on first sign-in. A second attempt for
	// an existing email is a no-op that reports created=false.
	Register(ctx context.Context, req models.CreateUserRequest) (user *models.User, created bool, err error)
	List(ctx context.Context) ([]*models.User, error)
	// IsAdmin reports whether the user record for email carries the admin
	// role. A missing record is not an error; it simply reports false.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// CartService defines the interface for cart operations.
type CartService interface {
	Add(ctx context.Context, req models.AddCartItemRequest) (*models.CartItem, error)
	ListByOwner(ctx context.Context, email string) ([]*models.CartItem, error)
	Remove(ctx context.Context, id string) error
}

// ReviewService defines the interface for review operations.
type ReviewService interface {
	List(ctx context.Context) ([]*models.Review, error)
}

// SettlementService records payments and retires the cart items they cover.
type SettlementService interface {
	Settle(ctx context.Context, req models.SettleRequest) (*SettlementResult, error)
	HistoryByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// BillingService creates payment intents with the upstream processor.
type BillingService interface {
	// CreateIntent registers an intent for price (major currency units) and
	// returns the processor's client secret.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}
