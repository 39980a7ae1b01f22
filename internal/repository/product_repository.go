package repository

import (
	"context"
	"errors"

	"github.com/jelllllllllll/F1s/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得・入れ替え）だけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)

	// DeleteByCodeは外部向けのCode（JSONの"id"）で消す。DB主キーではない。
	DeleteByCode(ctx context.Context, code string) error

	// ReplaceAllは全件入れ替え（シード）。途中で失敗したら元に戻ること。
	ReplaceAll(ctx context.Context, products []model.Product) error
}
