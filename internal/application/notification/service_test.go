package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, customer domain.CustomerInfo, cart []domain.CartItem) (int64, error) {
	args := m.Called(ctx, customer, cart)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListPending(ctx context.Context) ([]domain.WithItems, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WithItems), args.Error(1)
}

func (m *MockOrderRepository) Complete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) FindDetail(ctx context.Context, orderID int64) (*domain.WithItems, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithItems), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}

func strptr(s string) *string { return &s }

func sampleDetail() *domain.WithItems {
	return &domain.WithItems{
		Order: domain.Order{
			ID:           12,
			CustomerName: "Jane Doe",
			Phone:        "9876543210",
			Address:      "12 Baker Street",
			Note:         strptr("Ring the bell"),
			Status:       domain.StatusPending,
			CreatedAt:    time.Date(2026, 8, 14, 18, 30, 5, 0, time.UTC),
		},
		Items: []domain.Item{
			{ProductName: "Cupcake Box", Flavour: strptr("Chocolate"), Quantity: 3, LineTotal: 300},
			{ProductName: "Brownie", Quantity: 1, LineTotal: 60},
		},
	}
}

func TestBuildBody(t *testing.T) {
	want := "New order #12\n" +
		"Time: 14/08/2026 18:30:05\n" +
		"Customer: Jane Doe\n" +
		"Phone: 9876543210\n" +
		"Address: 12 Baker Street\n" +
		"Note: Ring the bell\n" +
		"\n" +
		"Items:\n" +
		"- Cupcake Box (Chocolate) x 3 = ₹300\n" +
		"- Brownie x 1 = ₹60\n" +
		"\n" +
		"Total: ₹360"

	assert.Equal(t, want, BuildBody(sampleDetail()))
}

func TestBuildBody_NoNote(t *testing.T) {
	detail := sampleDetail()
	detail.Note = nil

	assert.NotContains(t, BuildBody(detail), "Note:")
}

func TestService_Send_Success(t *testing.T) {
	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	svc := NewService(repo, mailer, zap.NewNop())

	ctx := context.Background()
	repo.On("FindDetail", ctx, int64(12)).Return(sampleDetail(), nil)
	mailer.On("Send", ctx, "New order #12", mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return(nil)

	svc.SendOrderNotification(ctx, 12)

	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestService_Send_MissingOrderIsNoop(t *testing.T) {
	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	svc := NewService(repo, mailer, zap.NewNop())

	ctx := context.Background()
	repo.On("FindDetail", ctx, int64(404)).Return(nil, nil)

	svc.SendOrderNotification(ctx, 404)

	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Send_UnconfiguredMailerIsNoop(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, nil, zap.NewNop())

	svc.SendOrderNotification(context.Background(), 12)

	repo.AssertNotCalled(t, "FindDetail", mock.Anything, mock.Anything)
}

func TestService_Send_DeliveryErrorIsSwallowed(t *testing.T) {
	repo := new(MockOrderRepository)
	mailer := new(MockMailer)
	svc := NewService(repo, mailer, zap.NewNop())

	ctx := context.Background()
	repo.On("FindDetail", ctx, int64(12)).Return(sampleDetail(), nil)
	mailer.On("Send", ctx, mock.Anything, mock.Anything).
		Return(errors.New("smtp unreachable"))

	require.NotPanics(t, func() {
		svc.SendOrderNotification(ctx, 12)
	})
	mailer.AssertExpectations(t)
}
