package server

import (
	"net/http"

	"github.com/jelllllllllll/F1s/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, orderH *handler.OrderHandler) {
	// 死活確認
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "F1 Marketplace server is running")
	})

	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
