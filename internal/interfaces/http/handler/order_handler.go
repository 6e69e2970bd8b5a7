package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/order"
)

type OrderHandler struct {
	svc    *app.Service
	logger *zap.Logger
}

func NewOrderHandler(svc *app.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, logger: logger}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := h.svc.PlaceOrder(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"message":  "Order placed",
	})
}
