package services

import (
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/smartlink-edu/campus-payments/utils"
)

// OrderGateway creates orders with the payment provider. The relay depends on
// this interface so tests can swap in a fake without network access.
type OrderGateway interface {
	// CreateOrder registers an order for amountPaise (smallest currency
	// unit) and returns the provider's order object. The receipt tag is the
	// caller's idempotency reference; the gateway itself never retries, as a
	// retried create could mint a duplicate order.
	CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error)
}

// RazorpayGateway talks to the Razorpay Orders API through the official SDK.
// The SDK handles Basic auth with the key pair and bounds each request with
// its default 10s timeout.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds a gateway from the key pair. The secret stays
// inside the SDK client and is never logged or returned.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

// CreateOrder implements OrderGateway.
func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	order, err := g.client.Order.Create(orderData, nil)
	if err != nil {
		// The SDK error string carries Razorpay's code and description,
		// which is all the diagnostics the provider exposes.
		return nil, utils.GatewayError("Razorpay order creation failed", err)
	}
	return order, nil
}
