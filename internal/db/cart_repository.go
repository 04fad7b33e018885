package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"parlour-backend-go/internal/models"
)

const cartsCollection = "carts"

// firestoreCartRepository implements the CartRepository interface using Firestore.
type firestoreCartRepository struct {
	client *firestore.Client
}

// NewFirestoreCartRepository creates a new instance of firestoreCartRepository.
func NewFirestoreCartRepository(client *firestore.Client) CartRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CartRepository.")
	}
	return &firestoreCartRepository{client: client}
}

// Insert adds a new cart item document with an auto-generated ID and sets
// item.ID before writing.
func (r *firestoreCartRepository) Insert(ctx context.Context, item *models.CartItem) (string, error) {
	docRef := r.client.Collection(cartsCollection).NewDoc()
	item.ID = docRef.ID
	if _, err := docRef.Create(ctx, item); err != nil {
		return "", fmt.Errorf("failed to insert cart item: %w", err)
	}
	return docRef.ID, nil
}

// FindByEmail retrieves all cart items owned by a user.
func (r *firestoreCartRepository) FindByEmail(ctx context.Context, email string) ([]*models.CartItem, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for FindByEmail operation")
	}
	iter := r.client.Collection(cartsCollection).Where("email", "==", email).Documents(ctx)
	defer iter.Stop()

	var items []*models.CartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart items for '%s': %w", email, err)
		}

		var item models.CartItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("Error decoding cart item data (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, email, err)
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}
	return items, nil
}

// Delete removes a single cart item document.
func (r *firestoreCartRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("cart item ID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(cartsCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("cart item with ID '%s' not found for deletion: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete cart item with ID '%s': %w", id, err)
	}
	return nil
}
