package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/repository"
)

// Notifier schedules the post-commit operator notification. It must
// not block and its outcome never affects the caller.
type Notifier interface {
	Enqueue(orderID int64)
}

type Service struct {
	orders   repository.OrderRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(orders repository.OrderRepository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{orders: orders, notifier: notifier, logger: logger}
}

// PlaceOrder validates the draft, persists the order and all its lines
// atomically, and schedules the notification once the transaction has
// committed. A failure anywhere leaves the store untouched.
func (s *Service) PlaceOrder(ctx context.Context, draft domain.Draft) (int64, error) {
	customer, err := draft.Validate()
	if err != nil {
		return 0, err
	}

	orderID, err := s.orders.Create(ctx, customer, draft.Cart)
	if err != nil {
		return 0, err
	}

	s.logger.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.Int("items", len(draft.Cart)))
	s.notifier.Enqueue(orderID)

	return orderID, nil
}

// ListPending returns open orders for the admin view, newest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.WithItems, error) {
	orders, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	return orders, nil
}

// Complete marks an order completed. Completing twice, or completing
// an id that does not exist, reports success: the update just affects
// zero rows.
func (s *Service) Complete(ctx context.Context, orderID int64) error {
	if err := s.orders.Complete(ctx, orderID); err != nil {
		return fmt.Errorf("complete order %d: %w", orderID, err)
	}
	s.logger.Info("order completed", zap.Int64("order_id", orderID))
	return nil
}
