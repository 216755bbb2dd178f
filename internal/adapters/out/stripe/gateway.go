// Package stripe implements ports.PaymentGateway with Stripe PaymentIntents
// and Refunds.
package stripe

import (
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var (
	ErrPaymentDeclined = errors.New("payment declined")
	ErrProviderDown    = errors.New("payment provider unavailable")
)

type Config struct {
	APIKey string
	// PaymentMethod is charged for server-initiated payments, e.g. a saved
	// card of the shipper's billing account.
	PaymentMethod string
	Customer      string
}

type Gateway struct {
	client *client.API
	cfg    Config
}

func NewGateway(cfg Config) *Gateway {
	return NewGatewayWithBackends(cfg, nil)
}

// NewGatewayWithBackends points the client at custom backends; nil uses the
// Stripe API.
func NewGatewayWithBackends(cfg Config, backends *stripe.Backends) *Gateway {
	sc := &client.API{}
	sc.Init(cfg.APIKey, backends)
	return &Gateway{client: sc, cfg: cfg}
}
