package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/storefront"
	"github.com/jelllllllllll/F1s/internal/storefront/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type sourceMock struct {
	products []model.Product
	err      error
}

func (s *sourceMock) FetchProducts(ctx context.Context) ([]model.Product, error) {
	return s.products, s.err
}

func writeLocalCatalog(t *testing.T, dir string, products []model.Product) {
	t.Helper()
	data, err := json.Marshal(products)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), data, 0o644))
}

func TestNewState_LoadsFromBackend(t *testing.T) {
	src := &sourceMock{products: []model.Product{{Code: "cap", Title: "Cap"}}}

	s, err := storefront.NewState(context.Background(), src, t.TempDir(), cart.NewFileStore(t.TempDir()))
	assert.NoError(t, err)
	assert.Len(t, s.Products, 1)

	p, ok := s.FindProduct("cap")
	assert.True(t, ok)
	assert.Equal(t, "Cap", p.Title)
}

func TestNewState_FallsBackWhenBackendUnreachable(t *testing.T) {
	publicDir := t.TempDir()
	writeLocalCatalog(t, publicDir, []model.Product{{Code: "local-cap"}})

	src := &sourceMock{err: assert.AnError}
	s, err := storefront.NewState(context.Background(), src, publicDir, cart.NewFileStore(t.TempDir()))
	assert.NoError(t, err)
	assert.Len(t, s.Products, 1)
	assert.Equal(t, "local-cap", s.Products[0].Code)
}

func TestNewState_FallsBackWhenBackendEmpty(t *testing.T) {
	publicDir := t.TempDir()
	writeLocalCatalog(t, publicDir, []model.Product{{Code: "local-cap"}})

	src := &sourceMock{products: []model.Product{}}
	s, err := storefront.NewState(context.Background(), src, publicDir, cart.NewFileStore(t.TempDir()))
	assert.NoError(t, err)
	assert.Equal(t, "local-cap", s.Products[0].Code)
}

func TestNewState_ErrorWhenNoSourceAvailable(t *testing.T) {
	src := &sourceMock{err: assert.AnError}
	_, err := storefront.NewState(context.Background(), src, t.TempDir(), cart.NewFileStore(t.TempDir()))
	assert.Error(t, err)
}

func TestNewState_CartSurvivesRestart(t *testing.T) {
	cartDir := t.TempDir()
	src := &sourceMock{products: []model.Product{{Code: "cap", Price: decimal.NewFromInt(10)}}}

	s1, err := storefront.NewState(context.Background(), src, t.TempDir(), cart.NewFileStore(cartDir))
	assert.NoError(t, err)
	assert.NoError(t, s1.Cart.Add("cap", 3))

	s2, err := storefront.NewState(context.Background(), src, t.TempDir(), cart.NewFileStore(cartDir))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), s2.Cart.Count())
}

// =====================
// APIClient（実HTTP経由）
// =====================

func TestAPIClient_FetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Product{{Code: "cap"}})
	}))
	defer srv.Close()

	products, err := storefront.NewAPIClient(srv.URL).FetchProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestAPIClient_CreateOrder_NonCreatedStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad order"}`))
	}))
	defer srv.Close()

	_, err := storefront.NewAPIClient(srv.URL).CreateOrder(context.Background(), model.Order{})
	assert.Error(t, err)
}

func TestAPIClient_CreateOrder_ReturnsCreatedOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var o model.Order
		_ = json.NewDecoder(r.Body).Decode(&o)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(o)
	}))
	defer srv.Close()

	created, err := storefront.NewAPIClient(srv.URL).CreateOrder(context.Background(), model.Order{
		OrderNumber: "F1M-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "F1M-1", created.OrderNumber)
}
