package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	repo "github.com/jelllllllllll/F1s/internal/repository"

	"go.uber.org/zap"
)

// 現在時刻（IDの採番に使う）
type Clock interface {
	Now() time.Time
}

// CatalogUsecase は /api/products と /api/seed の業務ロジック。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
	imageStore  repo.ImageStore
	clock       Clock
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository, imageStore repo.ImageStore, clock Clock) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo: productRepo,
		imageStore:  imageStore,
		clock:       clock,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		zap.S().Errorf("list products failed: %v", err)
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return products, nil
}

// アップロードされた画像（無いこともある）
type UploadedImage struct {
	Filename string
	Body     io.Reader
}

type CreateProductInput struct {
	ProductData []byte         // multipartのproductData（JSON文字列）
	Image       *UploadedImage // 任意
	BaseURL     string         // リクエスト由来の scheme://host
}

// CreateProductは商品を1件登録する。
// Codeが無ければ現在時刻から採番。アップロード画像があれば保存して
// 参照URLをリクエストのホスト基準の完全なURLに書き換える。
func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	var p model.Product
	if err := json.Unmarshal(in.ProductData, &p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if p.Code == "" {
		p.Code = strconv.FormatInt(u.clock.Now().UnixMilli(), 10)
	}

	imagePath := ""
	if in.Image != nil {
		name, err := u.imageStore.Save(in.Image.Filename, in.Image.Body)
		if err != nil {
			zap.S().Errorf("image save failed: %v", err)
			return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
		imagePath = fmt.Sprintf("%s/uploads/%s", in.BaseURL, name)
	} else if len(p.Images) > 0 {
		imagePath = p.Images[0]
	}
	p.Images = []string{imagePath}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		zap.S().Errorf("create product failed: %v", err)
		return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return created, nil
}

// Seedは商品コレクションを渡された配列で丸ごと入れ替える。戻り値は投入件数。
func (u *CatalogUsecase) Seed(ctx context.Context, products []model.Product) (int, error) {
	if err := u.productRepo.ReplaceAll(ctx, products); err != nil {
		zap.S().Errorf("seed failed: %v", err)
		return 0, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	zap.S().Infof("catalog seeded with %d products", len(products))
	return len(products), nil
}

// DeleteProductは外部向けCodeで1件消す。
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, code string) error {
	err := u.productRepo.DeleteByCode(ctx, code)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.S().Errorf("delete product %s failed: %v", code, err)
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
