package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parlour-backend-go/internal/models"
)

const reviewsCollection = "reviews"

// firestoreReviewRepository implements the ReviewRepository interface using Firestore.
type firestoreReviewRepository struct {
	client *firestore.Client
}

// NewFirestoreReviewRepository creates a new instance of firestoreReviewRepository.
func NewFirestoreReviewRepository(client *firestore.Client) ReviewRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReviewRepository.")
	}
	return &firestoreReviewRepository{client: client}
}

// List retrieves all review documents.
func (r *firestoreReviewRepository) List(ctx context.Context) ([]*models.Review, error) {
	iter := r.client.Collection(reviewsCollection).Documents(ctx)
	defer iter.Stop()

	var reviews []*models.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews: %w", err)
		}

		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			log.Printf("Error decoding review data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}
	return reviews, nil
}
