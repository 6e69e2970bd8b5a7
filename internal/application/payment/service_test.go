package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/catalog"
	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListActive(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) PriceByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (string, error) {
	args := m.Called(ctx, amountPaise, receipt)
	return args.String(0), args.Error(1)
}

func intentDraft() domain.Draft {
	return domain.Draft{
		CustomerName: "Jane Doe",
		Phone:        "9876543210",
		Address:      "12 Baker Street",
		Cart: []domain.CartItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestService_CreateIntent_Success(t *testing.T) {
	products := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewService(products, gateway, "rzp_test_key", zap.NewNop())

	ctx := context.Background()
	products.On("PriceByID", ctx, int64(1)).Return(int64(100), nil)
	products.On("PriceByID", ctx, int64(2)).Return(int64(60), nil)
	// total 360 rupees -> 36000 paise, receipt from the normalized phone
	gateway.On("CreateOrder", ctx, int64(36000), "order_cart_9876543210").
		Return("order_rzp_abc123", nil)

	intent, err := svc.CreateIntent(ctx, intentDraft())

	require.NoError(t, err)
	assert.Equal(t, "rzp_test_key", intent.KeyID)
	assert.Equal(t, "order_rzp_abc123", intent.GatewayOrderID)
	assert.Equal(t, int64(360), intent.Amount)
	assert.Equal(t, "INR", intent.Currency)
	assert.Equal(t, "9876543210", intent.Customer.Phone)
	gateway.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestService_CreateIntent_UnknownProduct(t *testing.T) {
	products := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewService(products, gateway, "rzp_test_key", zap.NewNop())

	ctx := context.Background()
	products.On("PriceByID", ctx, int64(1)).Return(int64(100), nil)
	products.On("PriceByID", ctx, int64(2)).
		Return(int64(0), &domain.InvalidProductError{ProductID: 2})

	_, err := svc.CreateIntent(ctx, intentDraft())

	var invalid *domain.InvalidProductError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, int64(2), invalid.ProductID)
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateIntent_ZeroTotal(t *testing.T) {
	products := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewService(products, gateway, "rzp_test_key", zap.NewNop())

	ctx := context.Background()
	products.On("PriceByID", ctx, mock.Anything).Return(int64(0), nil)

	_, err := svc.CreateIntent(ctx, intentDraft())

	var invalid *domain.InvalidTotalError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Total amount must be greater than zero", err.Error())
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateIntent_GatewayFailure(t *testing.T) {
	products := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewService(products, gateway, "rzp_test_key", zap.NewNop())

	ctx := context.Background()
	products.On("PriceByID", ctx, mock.Anything).Return(int64(100), nil)
	gateway.On("CreateOrder", ctx, mock.Anything, mock.Anything).
		Return("", errors.New("gateway timeout"))

	_, err := svc.CreateIntent(ctx, intentDraft())

	require.Error(t, err)
	assert.Equal(t, "Failed to create Razorpay order: gateway timeout", err.Error())
	// Gateway failures surface like business errors: HTTP 200 + error field.
	assert.True(t, domain.IsBusinessError(err))
}

func TestService_CreateIntent_EmptyCart(t *testing.T) {
	products := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewService(products, gateway, "rzp_test_key", zap.NewNop())

	draft := intentDraft()
	draft.Cart = nil

	_, err := svc.CreateIntent(context.Background(), draft)

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	products.AssertNotCalled(t, "PriceByID", mock.Anything, mock.Anything)
}
