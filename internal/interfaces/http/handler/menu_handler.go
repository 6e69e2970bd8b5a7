package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/catalog"
)

type MenuHandler struct {
	svc    *app.Service
	logger *zap.Logger
}

func NewMenuHandler(svc *app.Service, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, logger: logger}
}

type menuItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Flavour  *string `json:"flavour"`
	PackSize int     `json:"pack_size"`
	Price    int64   `json:"price"`
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	products, err := h.svc.Menu(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]menuItem, 0, len(products))
	for _, p := range products {
		items = append(items, menuItem{
			ID:       p.ID,
			Name:     p.Name,
			Flavour:  p.Flavour,
			PackSize: p.PackSize,
			Price:    p.Price,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
