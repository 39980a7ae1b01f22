package server

import (
	"time"

	"github.com/jelllllllllll/F1s/internal/config"
	"github.com/jelllllllllll/F1s/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Newはechoアプリを組み立てる。ルート登録は routes.go 側。
func New(cfg config.Config, productH *handler.ProductHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(requestLogger())

	// アップロード画像の配信
	e.Static("/uploads", cfg.UploadDir)

	RegisterRoutes(e, productH, orderH)
	return e
}

func Start(e *echo.Echo, port string) error {
	addr := ":" + port
	zap.S().Infof("server listening on %s", addr)
	return e.Start(addr)
}

// zap経由のアクセスログ
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			zap.L().Info("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
