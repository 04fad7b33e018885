package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parlour-backend-go/internal/models"
)

const paymentsCollection = "payments"

// firestorePaymentRepository implements the PaymentRepository interface using Firestore.
type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a new instance of firestorePaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PaymentRepository.")
	}
	return &firestorePaymentRepository{client: client}
}

// Insert adds a new payment document with an auto-generated ID and sets
// payment.ID before writing. Payment records are written once and never
// mutated afterwards.
func (r *firestorePaymentRepository) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	if payment.Email == "" {
		return "", errors.New("payment email cannot be empty for Insert operation")
	}
	docRef := r.client.Collection(paymentsCollection).NewDoc()
	payment.ID = docRef.ID
	if _, err := docRef.Create(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to insert payment for '%s': %w", payment.Email, err)
	}
	return docRef.ID, nil
}

// FindByEmail retrieves all payment records for a user, newest first.
func (r *firestorePaymentRepository) FindByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for FindByEmail operation")
	}
	iter := r.client.Collection(paymentsCollection).
		Where("email", "==", email).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var payments []*models.Payment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate payments for '%s': %w", email, err)
		}

		var payment models.Payment
		if err := doc.DataTo(&payment); err != nil {
			log.Printf("Error decoding payment data (ID: %s) for '%s': %v. Skipping.", doc.Ref.ID, email, err)
			continue
		}
		payment.ID = doc.Ref.ID
		payments = append(payments, &payment)
	}
	return payments, nil
}
