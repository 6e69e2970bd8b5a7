package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/analytics"
	orderapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/order"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/analytics"
)

const (
	timestampLayout = "02/01/2006 15:04:05"
	dateLayout      = "02/01/2006"
	queryDateLayout = "2006-01-02"
)

type AdminHandler struct {
	orders    *orderapp.Service
	analytics *analyticsapp.Service
	logger    *zap.Logger
}

func NewAdminHandler(orders *orderapp.Service, analytics *analyticsapp.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{orders: orders, analytics: analytics, logger: logger}
}

type adminOrderItem struct {
	ProductName string  `json:"product_name"`
	Flavour     *string `json:"flavour"`
	Quantity    int     `json:"quantity"`
	LineTotal   int64   `json:"line_total"`
}

type adminOrder struct {
	OrderID      int64            `json:"order_id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	CreatedAt    string           `json:"created_at"`
	Note         *string          `json:"note"`
	Items        []adminOrderItem `json:"items"`
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	pending, err := h.orders.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	orders := make([]adminOrder, 0, len(pending))
	for _, o := range pending {
		items := make([]adminOrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, adminOrderItem{
				ProductName: item.ProductName,
				Flavour:     item.Flavour,
				Quantity:    item.Quantity,
				LineTotal:   item.LineTotal,
			})
		}
		orders = append(orders, adminOrder{
			OrderID:      o.ID,
			CustomerName: o.CustomerName,
			Phone:        o.Phone,
			Address:      o.Address,
			CreatedAt:    o.CreatedAt.Format(timestampLayout),
			Note:         o.Note,
			Items:        items,
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminHandler) CompleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.orders.Complete(c.Request.Context(), orderID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order %d marked as completed", orderID),
	})
}

type analyticsSummary struct {
	TotalOrders  int64 `json:"total_orders"`
	TotalRevenue int64 `json:"total_revenue"`
}

type analyticsWeek struct {
	WeekStart  string `json:"week_start"`
	OrderCount int64  `json:"order_count"`
	Revenue    int64  `json:"revenue"`
}

type analyticsProduct struct {
	ProductName   string  `json:"product_name"`
	Flavour       *string `json:"flavour"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  int64   `json:"total_revenue"`
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	var dateRange analytics.DateRange

	if raw := c.Query("from_date"); raw != "" {
		from, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from_date"})
			return
		}
		dateRange.From = &from
	}
	if raw := c.Query("to_date"); raw != "" {
		to, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to_date"})
			return
		}
		dateRange.To = &to
	}

	report, err := h.analytics.Report(c.Request.Context(), dateRange)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	weeks := make([]analyticsWeek, 0, len(report.OrdersPerWeek))
	for _, w := range report.OrdersPerWeek {
		weeks = append(weeks, analyticsWeek{
			WeekStart:  w.WeekStart.Format(dateLayout),
			OrderCount: w.OrderCount,
			Revenue:    w.Revenue,
		})
	}

	products := make([]analyticsProduct, 0, len(report.TopProducts))
	for _, p := range report.TopProducts {
		products = append(products, analyticsProduct{
			ProductName:   p.ProductName,
			Flavour:       p.Flavour,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": analyticsSummary{
			TotalOrders:  report.Summary.TotalOrders,
			TotalRevenue: report.Summary.TotalRevenue,
		},
		"orders_per_week": weeks,
		"top_products":    products,
	})
}
