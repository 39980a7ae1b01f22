package handler

import (
	"net/http"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/orders のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", h.create)
	e.GET("/api/orders", h.list)
}

func (h *OrderHandler) create(c echo.Context) error {
	var o model.Order
	if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := h.uc.CreateOrder(c.Request().Context(), o)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
