package repository

import (
	"context"

	"github.com/jelllllllllll/F1s/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文の作成
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 新しい順で全件
func (r *OrderGormRepository) ListNewestFirst(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("order_date desc").Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}
