package repository

import (
	"context"

	"github.com/jelllllllllll/F1s/internal/domain/model"
)

// 注文の永続化。更新・削除の操作は存在しない。
type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)

	// ListNewestFirstはorderDate降順で全件返す。
	ListNewestFirst(ctx context.Context) ([]model.Order, error)
}
