package usecase

import (
	"context"
	"net/http"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	repo "github.com/jelllllllllll/F1s/internal/repository"

	"go.uber.org/zap"
)

// OrderUsecase は /api/orders の業務ロジック。
// フィールドの中身は検証しない。リクエストをそのまま保存する。
type OrderUsecase struct {
	orderRepo repo.OrderRepository
	clock     Clock
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, clock: clock}
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = u.clock.Now()
	}

	created, err := u.orderRepo.Create(ctx, o)
	if err != nil {
		zap.S().Errorf("create order failed: %v", err)
		return model.Order{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	zap.S().Infof("order %s created, total %s", created.OrderNumber, created.TotalAmount)
	return created, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.ListNewestFirst(ctx)
	if err != nil {
		zap.S().Errorf("list orders failed: %v", err)
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return orders, nil
}
