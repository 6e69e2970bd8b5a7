package payment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/repository"
)

// Gateway creates a remote payment-gateway order for an amount in
// paise and returns its id.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (string, error)
}

// GatewayError wraps a failed gateway call. It surfaces to the client
// the same way business-rule failures do.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "Failed to create Razorpay order: " + e.Err.Error()
}
func (e *GatewayError) Unwrap() error { return e.Err }
func (e *GatewayError) BusinessRule() {}

// Intent is the pre-checkout payload the storefront hands to the
// hosted checkout widget. Amount is in whole rupees; the gateway
// order was created for amount × 100 paise.
type Intent struct {
	KeyID          string
	GatewayOrderID string
	Amount         int64
	Currency       string
	Customer       domain.CustomerInfo
}

type Service struct {
	products repository.ProductRepository
	gateway  Gateway
	keyID    string
	logger   *zap.Logger
}

func NewService(products repository.ProductRepository, gateway Gateway, keyID string, logger *zap.Logger) *Service {
	return &Service{products: products, gateway: gateway, keyID: keyID, logger: logger}
}

// CreateIntent validates and prices the draft without persisting
// anything, then registers a gateway order for the total. The receipt
// id is derived from the normalized phone number so the gateway record
// can be correlated back to the customer.
func (s *Service) CreateIntent(ctx context.Context, draft domain.Draft) (*Intent, error) {
	customer, err := draft.Validate()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, item := range draft.Cart {
		price, err := s.products.PriceByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		total += price * int64(item.Quantity)
	}
	if total <= 0 {
		return nil, &domain.InvalidTotalError{Total: total}
	}

	receipt := "order_cart_" + customer.Phone
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, total*100, receipt)
	if err != nil {
		s.logger.Warn("gateway order creation failed",
			zap.String("receipt", receipt),
			zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	return &Intent{
		KeyID:          s.keyID,
		GatewayOrderID: gatewayOrderID,
		Amount:         total,
		Currency:       "INR",
		Customer:       customer,
	}, nil
}
