package handler

import (
	"fmt"
	"net/http"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 失敗・成功どちらも {"message": ...} で返す（既存クライアント互換）
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal error"})
}

// /api/products と /api/seed のHTTP
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/products", h.list)
	e.POST("/api/products", h.create)
	e.POST("/api/seed", h.seed)
	e.DELETE("/api/products/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// multipart: productData（JSON文字列）+ image（任意）
func (h *ProductHandler) create(c echo.Context) error {
	productData := c.FormValue("productData")
	if productData == "" {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "productData is required"})
	}

	in := usecase.CreateProductInput{
		ProductData: []byte(productData),
		BaseURL:     fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host),
	}

	if fh, err := c.FormFile("image"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		}
		defer src.Close()
		in.Image = &usecase.UploadedImage{Filename: fh.Filename, Body: src}
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// 商品コレクションの丸ごと入れ替え。確認なしの破壊的操作。
func (h *ProductHandler) seed(c echo.Context) error {
	var products []model.Product
	if err := c.Bind(&products); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	n, err := h.uc.Seed(c.Request().Context(), products)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Database seeded with %d products", n),
	})
}

func (h *ProductHandler) delete(c echo.Context) error {
	code := c.Param("id")
	if err := h.uc.DeleteProduct(c.Request().Context(), code); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
