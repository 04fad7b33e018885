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

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Insert adds a new user document with an auto-generated ID and sets
// user.ID before writing. CreatedAt is populated server-side via the
// serverTimestamp tag.
func (r *firestoreUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	if user.Email == "" {
		return "", errors.New("user email cannot be empty for Insert operation")
	}
	docRef := r.client.Collection(usersCollection).NewDoc()
	user.ID = docRef.ID
	if _, err := docRef.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to insert user '%s': %w", user.Email, err)
	}
	return docRef.ID, nil
}

// GetByEmail retrieves the user document whose email field matches.
// Email is the unique key into the user store; the first match wins.
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("user with email '%s' not found: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user with email '%s': %w", email, err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for email '%s': %w", email, err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// List retrieves all user documents.
func (r *firestoreUserRepository) List(ctx context.Context) ([]*models.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var user models.User
		if err := doc.DataTo(&user); err != nil {
			log.Printf("Error decoding user data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// SetRole updates the role field of an existing user document.
func (r *firestoreUserRepository) SetRole(ctx context.Context, id, role string) error {
	if id == "" {
		return errors.New("user ID cannot be empty for SetRole operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set role for user '%s': %w", id, err)
	}
	return nil
}

// Delete removes a user document.
func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("user ID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found for deletion: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete user with ID '%s': %w", id, err)
	}
	return nil
}
