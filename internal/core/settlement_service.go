package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"parlour-backend-go/internal/db"
	"parlour-backend-go/internal/models"
)

// ErrPersistPayment is returned when the payment record could not be
// durably written. No cart item is touched in that case; the caller must
// resubmit.
var ErrPersistPayment = errors.New("payment record was not persisted")

// SettlementResult reports what a settlement call actually did. When
// FailedCartIDs is non-empty the payment is committed but some referenced
// cart items remain; callers reconcile out of band.
type SettlementResult struct {
	Payment        *models.Payment
	RemovedCartIDs []string
	FailedCartIDs  []string
}

// settlementService implements the SettlementService interface.
type settlementService struct {
	payments db.PaymentRepository
	carts    db.CartRepository
	logger   *zap.Logger
}

// NewSettlementService creates a new SettlementService instance.
func NewSettlementService(payments db.PaymentRepository, carts db.CartRepository, logger *zap.Logger) SettlementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &settlementService{payments: payments, carts: carts, logger: logger}
}

// Settle persists the payment record and then removes the cart items it
// covers. The payment write is strictly first: a cart item is never removed
// without a committed payment referencing it. Cart removal is best-effort
// once the payment is committed; per-item failures are reported in the
// result, never retried here, and never roll the payment back.
//
// There is no idempotency key: a duplicate submission creates a second
// payment record for the same cart.
func (s *settlementService) Settle(ctx context.Context, req models.SettleRequest) (*SettlementResult, error) {
	if len(req.CartIDs) == 0 {
		return nil, errors.New("settlement requires at least one cart item ID")
	}

	payment := &models.Payment{
		Email:   req.Email,
		Amount:  req.Amount,
		CartIDs: req.CartIDs,
	}
	if _, err := s.payments.Insert(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistPayment, err)
	}

	result := &SettlementResult{Payment: payment}
	for _, cartID := range req.CartIDs {
		if err := s.carts.Delete(ctx, cartID); err != nil {
			s.logger.Warn("cart item not removed after payment commit",
				zap.String("paymentId", payment.ID),
				zap.String("cartId", cartID),
				zap.Error(err),
			)
			result.FailedCartIDs = append(result.FailedCartIDs, cartID)
			continue
		}
		result.RemovedCartIDs = append(result.RemovedCartIDs, cartID)
	}

	return result, nil
}

// HistoryByEmail lists the payment records belonging to email.
func (s *settlementService) HistoryByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.payments.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history for '%s': %w", email, err)
	}
	return payments, nil
}
