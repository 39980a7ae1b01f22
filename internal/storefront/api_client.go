package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jelllllllllll/F1s/internal/domain/model"

	"github.com/guonaihong/gout"
)

// APIClientはStorefront APIへの薄いHTTPクライアント。
// タイムアウトやリトライは持たない（トランスポート任せ）。
type APIClient struct {
	baseURL string
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{baseURL: baseURL}
}

func (c *APIClient) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	code := 0

	err := gout.GET(c.baseURL + "/api/products").
		WithContext(ctx).
		BindJSON(&products).
		Code(&code).
		Do()
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("fetch products: status %d", code)
	}
	return products, nil
}

func (c *APIClient) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	var created model.Order
	code := 0

	err := gout.POST(c.baseURL + "/api/orders").
		WithContext(ctx).
		SetJSON(o).
		BindJSON(&created).
		Code(&code).
		Do()
	if err != nil {
		return model.Order{}, err
	}
	if code != http.StatusCreated {
		return model.Order{}, fmt.Errorf("create order: status %d", code)
	}
	return created, nil
}

func (c *APIClient) FetchOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	code := 0

	err := gout.GET(c.baseURL + "/api/orders").
		WithContext(ctx).
		BindJSON(&orders).
		Code(&code).
		Do()
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: status %d", code)
	}
	return orders, nil
}
