package db

import (
	"context"

	"parlour-backend-go/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (string, error) // Returns new document ID
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

// CartRepository defines the interface for cart item storage operations.
type CartRepository interface {
	Insert(ctx context.Context, item *models.CartItem) (string, error) // Returns new document ID
	FindByEmail(ctx context.Context, email string) ([]*models.CartItem, error)
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines the interface for payment record storage operations.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (string, error) // Returns new document ID
	FindByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// ReviewRepository defines the interface for review storage operations.
type ReviewRepository interface {
	List(ctx context.Context) ([]*models.Review, error)
}
