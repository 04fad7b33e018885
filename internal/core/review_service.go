package core

import (
	"context"
	"fmt"

	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/models"
)

// reviewService implements the ReviewService interface.
type reviewService struct {
	reviewRepo db.ReviewRepository
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reviewRepo db.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) List(ctx context.Context) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
