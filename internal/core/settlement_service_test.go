package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"parlour-backend-go/internal/models"
)

// opLog records the order of repository operations across fakes.
type opLog struct {
	ops []string
}

type fakePaymentRepo struct {
	log       *opLog
	insertErr error
	payments  []*models.Payment
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *models.Payment) (string, error) {
	if f.log != nil {
		f.log.ops = append(f.log.ops, "insert-payment")
	}
	if f.insertErr != nil {
		return "", f.insertErr
	}
	payment.ID = "pay-1"
	f.payments = append(f.payments, payment)
	return payment.ID, nil
}

func (f *fakePaymentRepo) FindByEmail(_ context.Context, email string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	log       *opLog
	items     map[string]*models.CartItem
	failIDs   map[string]bool
	deleteErr error
}

func newFakeCartRepo(log *opLog, ids ...string) *fakeCartRepo {
	items := make(map[string]*models.CartItem, len(ids))
	for _, id := range ids {
		items[id] = &models.CartItem{ID: id, Email: "a@x.com"}
	}
	return &fakeCartRepo{log: log, items: items, failIDs: map[string]bool{}}
}

func (f *fakeCartRepo) Insert(_ context.Context, item *models.CartItem) (string, error) {
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *fakeCartRepo) FindByEmail(_ context.Context, email string) ([]*models.CartItem, error) {
	var out []*models.CartItem
	for _, item := range f.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) error {
	if f.log != nil {
		f.log.ops = append(f.log.ops, "delete-"+id)
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.failIDs[id] {
		return errors.New("simulated store fault")
	}
	delete(f.items, id)
	return nil
}

func TestSettle_AllItemsRemoved(t *testing.T) {
	log := &opLog{}
	payments := &fakePaymentRepo{log: log}
	carts := newFakeCartRepo(log, "c1", "c2")
	svc := NewSettlementService(payments, carts, nil)

	result, err := svc.Settle(context.Background(), models.SettleRequest{
		Email:   "a@x.com",
		Amount:  20,
		CartIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)

	require.Equal(t, "pay-1", result.Payment.ID)
	require.Equal(t, []string{"c1", "c2"}, result.Payment.CartIDs)
	require.ElementsMatch(t, []string{"c1", "c2"}, result.RemovedCartIDs)
	require.Empty(t, result.FailedCartIDs)

	// Exactly one payment record exists and no referenced item remains.
	require.Len(t, payments.payments, 1)
	require.Empty(t, carts.items)
}

func TestSettle_PaymentPrecedesCartRemoval(t *testing.T) {
	log := &opLog{}
	payments := &fakePaymentRepo{log: log}
	carts := newFakeCartRepo(log, "c1", "c2")
	svc := NewSettlementService(payments, carts, nil)

	_, err := svc.Settle(context.Background(), models.SettleRequest{
		Email:   "a@x.com",
		Amount:  20,
		CartIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"insert-payment", "delete-c1", "delete-c2"}, log.ops)
}

func TestSettle_PersistFailureAbortsBeforeCartMutation(t *testing.T) {
	log := &opLog{}
	payments := &fakePaymentRepo{log: log, insertErr: errors.New("store unavailable")}
	carts := newFakeCartRepo(log, "c1", "c2")
	svc := NewSettlementService(payments, carts, nil)

	_, err := svc.Settle(context.Background(), models.SettleRequest{
		Email:   "a@x.com",
		Amount:  20,
		CartIDs: []string{"c1", "c2"},
	})
	require.ErrorIs(t, err, ErrPersistPayment)

	// No delete was attempted and the cart is intact.
	require.Equal(t, []string{"insert-payment"}, log.ops)
	require.Len(t, carts.items, 2)
}

func TestSettle_PartialDeletionReportedNotFatal(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := newFakeCartRepo(nil, "c1", "c2", "c3")
	carts.failIDs["c2"] = true
	svc := NewSettlementService(payments, carts, nil)

	result, err := svc.Settle(context.Background(), models.SettleRequest{
		Email:   "a@x.com",
		Amount:  30,
		CartIDs: []string{"c1", "c2", "c3"},
	})
	require.NoError(t, err)

	require.Equal(t, "pay-1", result.Payment.ID)
	require.ElementsMatch(t, []string{"c1", "c3"}, result.RemovedCartIDs)
	require.Equal(t, []string{"c2"}, result.FailedCartIDs)

	// The payment stays committed and the failed item remains live.
	require.Len(t, payments.payments, 1)
	require.Contains(t, carts.items, "c2")
}

func TestSettle_EmptyCartIDsRejected(t *testing.T) {
	svc := NewSettlementService(&fakePaymentRepo{}, newFakeCartRepo(nil), nil)

	_, err := svc.Settle(context.Background(), models.SettleRequest{
		Email:  "a@x.com",
		Amount: 10,
	})
	require.Error(t, err)
}

func TestHistoryByEmail(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "p1", Email: "a@x.com"},
		{ID: "p2", Email: "b@x.com"},
	}}
	svc := NewSettlementService(payments, newFakeCartRepo(nil), nil)

	history, err := svc.HistoryByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "p1", history[0].ID)
}
