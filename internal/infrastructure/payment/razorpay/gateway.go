package razorpay

import (
	"context"
	"errors"
	"fmt"

	rzp "github.com/razorpay/razorpay-go"
)

// Gateway creates orders on the hosted Razorpay checkout. Amounts are
// in paise, Razorpay's minor currency unit.
type Gateway struct {
	client *rzp.Client
}

// New returns an unconfigured gateway (every call fails) when either
// key is empty, mirroring how the service is run without payments in
// local development.
func New(keyID, keySecret string) *Gateway {
	if keyID == "" || keySecret == "" {
		return &Gateway{}
	}
	return &Gateway{client: rzp.NewClient(keyID, keySecret)}
}

// CreateOrder registers a payment order for the given amount and
// receipt id, returning the gateway's order id. The SDK manages its
// own HTTP client; ctx is accepted for interface symmetry.
func (g *Gateway) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (string, error) {
	if g.client == nil {
		return "", errors.New("razorpay keys not configured")
	}

	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", fmt.Errorf("gateway response has no order id")
	}
	return id, nil
}
