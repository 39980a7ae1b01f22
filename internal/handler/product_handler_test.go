package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	repo "github.com/jelllllllllll/F1s/internal/repository"
	"github.com/jelllllllllll/F1s/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jelllllllllll/F1s/internal/handler"
)

// =====================
// In-memory fakes
// =====================

type fakeProductRepo struct {
	products []model.Product
	failWith error
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.products, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if f.failWith != nil {
		return model.Product{}, f.failWith
	}
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeProductRepo) DeleteByCode(ctx context.Context, code string) error {
	for i, p := range f.products {
		if p.Code == code {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeProductRepo) ReplaceAll(ctx context.Context, products []model.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.products = products
	return nil
}

type fakeImageStore struct{ saved []string }

func (f *fakeImageStore) Save(originalName string, body io.Reader) (string, error) {
	name := "1700000000000-" + originalName
	f.saved = append(f.saved, name)
	_, _ = io.Copy(io.Discard, body)
	return name, nil
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newProductServer(pRepo *fakeProductRepo, store *fakeImageStore) *echo.Echo {
	e := echo.New()
	uc := usecase.NewCatalogUsecase(pRepo, store, &fixedClock{t: time.UnixMilli(1700000000000)})
	handler.NewProductHandler(uc).RegisterRoutes(e)
	return e
}

// =====================
// Tests
// =====================

func TestListProducts_ReturnsAll(t *testing.T) {
	pRepo := &fakeProductRepo{products: []model.Product{
		{Code: "a", Title: "Cap", Price: decimal.NewFromFloat(89.99)},
		{Code: "b", Title: "Shirt"},
	}}
	e := newProductServer(pRepo, &fakeImageStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []model.Product
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Code)
}

func TestCreateProduct_MultipartWithImage(t *testing.T) {
	pRepo := &fakeProductRepo{}
	store := &fakeImageStore{}
	e := newProductServer(pRepo, store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("productData", `{"id":"cap-001","title":"Ferrari Cap","price":"89.99"}`)
	fw, _ := mw.CreateFormFile("image", "cap.jpg")
	_, _ = fw.Write([]byte("fakeimage"))
	_ = mw.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Host = "shop.example.com"
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.Product
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "cap-001", created.Code)
	// 画像参照はリクエストのホスト基準の完全なURLになる
	assert.Equal(t,
		[]string{"http://shop.example.com/uploads/1700000000000-cap.jpg"},
		created.Images)
	assert.Len(t, pRepo.products, 1)
}

func TestCreateProduct_MalformedPayload(t *testing.T) {
	e := newProductServer(&fakeProductRepo{}, &fakeImageStore{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("productData", "{broken")
	_ = mw.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeed_ReplacesCollection(t *testing.T) {
	pRepo := &fakeProductRepo{products: []model.Product{{Code: "old"}}}
	e := newProductServer(pRepo, &fakeImageStore{})

	body, _ := json.Marshal([]model.Product{{Code: "n1"}, {Code: "n2"}, {Code: "n3"}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seed", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database seeded with 3 products")

	// シード後の一覧は新しいNセットだけ
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	var out []model.Product
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &out))
	assert.Len(t, out, 3)
	for i, want := range []string{"n1", "n2", "n3"} {
		assert.Equal(t, want, out[i].Code)
	}
}

func TestDeleteProduct_ByExternalID(t *testing.T) {
	pRepo := &fakeProductRepo{products: []model.Product{
		{Code: "keep-1"}, {Code: "target"}, {Code: "keep-2"},
	}}
	e := newProductServer(pRepo, &fakeImageStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/target", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted successfully")

	// 消した商品だけが一覧から消える
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	var out []model.Product
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &out))
	codes := make([]string, 0, len(out))
	for _, p := range out {
		codes = append(codes, p.Code)
	}
	assert.Equal(t, []string{"keep-1", "keep-2"}, codes)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	e := newProductServer(&fakeProductRepo{}, &fakeImageStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestListProducts_StoreErrorSurfacesMessage(t *testing.T) {
	pRepo := &fakeProductRepo{failWith: fmt.Errorf("connection refused")}
	e := newProductServer(pRepo, &fakeImageStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
