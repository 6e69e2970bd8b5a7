package notification

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/repository"
)

const timeLayout = "02/01/2006 15:04:05"

// Mailer delivers one plain-text message to the operator.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// Service rebuilds an order summary from the store and mails it to the
// operator. It runs after the HTTP response has been sent, so every
// failure is logged and swallowed: a nil mailer, a missing order or a
// delivery error all complete as no-ops.
type Service struct {
	orders repository.OrderRepository
	mailer Mailer
	logger *zap.Logger
}

func NewService(orders repository.OrderRepository, mailer Mailer, logger *zap.Logger) *Service {
	return &Service{orders: orders, mailer: mailer, logger: logger}
}

func (s *Service) SendOrderNotification(ctx context.Context, orderID int64) {
	if s.mailer == nil {
		s.logger.Debug("email delivery not configured, skipping notification",
			zap.Int64("order_id", orderID))
		return
	}

	detail, err := s.orders.FindDetail(ctx, orderID)
	if err != nil {
		s.logger.Error("load order for notification",
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return
	}
	if detail == nil {
		s.logger.Warn("order vanished before notification",
			zap.Int64("order_id", orderID))
		return
	}

	subject := fmt.Sprintf("New order #%d", orderID)
	if err := s.mailer.Send(ctx, subject, BuildBody(detail)); err != nil {
		s.logger.Error("send order email",
			zap.Int64("order_id", orderID),
			zap.Error(err))
		return
	}

	s.logger.Info("order notification sent", zap.Int64("order_id", orderID))
}

// BuildBody renders the plain-text summary: header, customer block,
// itemized lines and the total recomputed from the stored line totals.
func BuildBody(detail *domain.WithItems) string {
	lines := []string{
		fmt.Sprintf("New order #%d", detail.ID),
		fmt.Sprintf("Time: %s", detail.CreatedAt.Format(timeLayout)),
		fmt.Sprintf("Customer: %s", detail.CustomerName),
		fmt.Sprintf("Phone: %s", detail.Phone),
		fmt.Sprintf("Address: %s", detail.Address),
	}
	if detail.Note != nil && *detail.Note != "" {
		lines = append(lines, fmt.Sprintf("Note: %s", *detail.Note))
	}
	lines = append(lines, "", "Items:")

	for _, item := range detail.Items {
		flavour := ""
		if item.Flavour != nil && *item.Flavour != "" {
			flavour = fmt.Sprintf(" (%s)", *item.Flavour)
		}
		lines = append(lines, fmt.Sprintf("- %s%s x %d = ₹%d",
			item.ProductName, flavour, item.Quantity, item.LineTotal))
	}

	lines = append(lines, "", fmt.Sprintf("Total: ₹%d", detail.Total()))
	return strings.Join(lines, "\n")
}
