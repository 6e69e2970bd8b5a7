package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

// orderRequest is the shared body shape of the placement and
// payment-intent endpoints.
type orderRequest struct {
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Note         *string            `json:"note"`
	Items        []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (r orderRequest) draft() domain.Draft {
	cart := make([]domain.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		cart = append(cart, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return domain.Draft{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		Note:         r.Note,
		Cart:         cart,
	}
}

// respondError keeps the customer endpoints' contract: business-rule
// failures come back as HTTP 200 with an error field so the client
// parses one shape; infrastructure faults are real server errors.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if domain.IsBusinessError(err) {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
