package core

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentIntentCreator is the slice of the Stripe client the billing
// service depends on.
type PaymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// billingService implements the BillingService interface on top of Stripe.
type billingService struct {
	intents PaymentIntentCreator
}

// NewBillingService creates a BillingService from any PaymentIntentCreator.
func NewBillingService(intents PaymentIntentCreator) BillingService {
	return &billingService{intents: intents}
}

// NewStripeBillingService creates a BillingService backed by a real Stripe
// client for the given secret key.
func NewStripeBillingService(apiKey string) BillingService {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return NewBillingService(sc.PaymentIntents)
}

// CreateIntent registers a card payment intent for price and returns the
// client secret the frontend needs to confirm it. The amount sent upstream
// is in minor units (price x 100, truncated). Processor errors surface
// as-is; there is no retry.
func (s *billingService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
