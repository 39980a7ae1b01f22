package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/storefront/cart"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// Stateは画面側が持つ状態の全部。グローバル変数にはしない。
type State struct {
	Products []model.Product
	Cart     *cart.Manager
	Bus      EventBus.Bus
}

// ProductsSourceはカタログの取得元（APIクライアント）。
type ProductsSource interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
}

// NewStateはカタログを読み込み、カートを復元して返す。
// APIが落ちている・空の場合はpublicDirのproducts.jsonへフォールバック。
func NewState(ctx context.Context, src ProductsSource, publicDir string, cartStore cart.Store) (*State, error) {
	products, err := loadProducts(ctx, src, publicDir)
	if err != nil {
		return nil, err
	}

	bus := EventBus.New()

	s := &State{
		Products: products,
		Bus:      bus,
	}
	s.Cart = cart.NewManager(cartStore, bus, s.FindProduct)
	return s, nil
}

func loadProducts(ctx context.Context, src ProductsSource, publicDir string) ([]model.Product, error) {
	products, err := src.FetchProducts(ctx)
	if err == nil && len(products) > 0 {
		zap.S().Info("catalog loaded from backend")
		return products, nil
	}
	if err != nil {
		zap.S().Warnf("backend unavailable, falling back to local catalog: %v", err)
	} else {
		zap.S().Warn("backend returned an empty catalog, falling back to local catalog")
	}

	data, readErr := os.ReadFile(filepath.Join(publicDir, "products.json"))
	if readErr != nil {
		return nil, errors.Join(err, readErr)
	}
	var local []model.Product
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, err
	}
	return local, nil
}

// FindProductは外部向けCodeで逆引きする。
func (s *State) FindProduct(code string) (model.Product, bool) {
	for _, p := range s.Products {
		if p.Code == code {
			return p, true
		}
	}
	return model.Product{}, false
}
