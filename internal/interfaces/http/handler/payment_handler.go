package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/payment"
)

type PaymentHandler struct {
	svc    *app.Service
	logger *zap.Logger
}

func NewPaymentHandler(svc *app.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

type paymentCustomer struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Note    *string `json:"note"`
}

type paymentResponse struct {
	RazorpayKeyID   string          `json:"razorpay_key_id"`
	RazorpayOrderID string          `json:"razorpay_order_id"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	Customer        paymentCustomer `json:"customer"`
}

func (h *PaymentHandler) CreatePaymentOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, paymentResponse{
		RazorpayKeyID:   intent.KeyID,
		RazorpayOrderID: intent.GatewayOrderID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Customer: paymentCustomer{
			Name:    intent.Customer.Name,
			Phone:   intent.Customer.Phone,
			Address: intent.Customer.Address,
			Note:    intent.Customer.Note,
		},
	})
}
