package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/core/ports"

	"github.com/stripe/stripe-go/v79"
)

// Charge confirms an off-session PaymentIntent and returns its id. Anything
// short of "succeeded" is a failure.
func (g *Gateway) Charge(ctx context.Context, req ports.ChargeRequest) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrPaymentDeclined)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
		Description: stripe.String(req.Description),
	}
	if g.cfg.PaymentMethod != "" {
		params.PaymentMethod = stripe.String(g.cfg.PaymentMethod)
	}
	if g.cfg.Customer != "" {
		params.Customer = stripe.String(g.cfg.Customer)
	}
	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", mapError(err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("%w: payment intent %s is %s", ErrPaymentDeclined, pi.ID, pi.Status)
	}
	return pi.ID, nil
}

// Refund reverses part of a PaymentIntent. A pending refund counts as
// accepted; Stripe settles it asynchronously.
func (g *Gateway) Refund(ctx context.Context, req ports.GatewayRefundRequest) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.TransactionID),
		Amount:        stripe.Int64(req.Amount),
	}
	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(req.IdempotencyKey)
	}
	params.Context = ctx

	r, err := g.client.Refunds.New(params)
	if err != nil {
		return "", mapError(err)
	}
	if r.Status == stripe.RefundStatusFailed || r.Status == stripe.RefundStatusCanceled {
		return "", fmt.Errorf("%w: refund %s is %s", ErrPaymentDeclined, r.ID, r.Status)
	}
	return r.ID, nil
}

func mapError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrProviderDown, stripeErr.Msg)
		}
		switch stripeErr.Code {
		case stripe.ErrorCodeCardDeclined,
			stripe.ErrorCodeExpiredCard,
			stripe.ErrorCodeBalanceInsufficient,
			stripe.ErrorCodeChargeAlreadyRefunded:
			return fmt.Errorf("%w: %s", ErrPaymentDeclined, stripeErr.Msg)
		}
		return fmt.Errorf("stripe %s: %s", stripeErr.Code, stripeErr.Msg)
	}
	return fmt.Errorf("stripe: %w", err)
}
