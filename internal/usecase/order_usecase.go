package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chapati/internal/domain/model"
	repo "chapati/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 現在時刻を注入する約束（テストで固定する）
type Clock interface {
	Now() time.Time
}

// 新しい注文を購読者へ流す約束
type OrderNotifier interface {
	Broadcast(order model.Order)
}

// 注文入力を検証する約束
type OrderValidator interface {
	ValidateSubmission(product string, quantity int, location string) error
}

type OrderUsecase struct {
	store     repo.OrderStore
	notifier  OrderNotifier
	validator OrderValidator
	clock     Clock
	unitPrice int
	retention time.Duration
}

// DI
func NewOrderUsecase(
	store repo.OrderStore,
	notifier OrderNotifier,
	validator OrderValidator,
	clock Clock,
	unitPrice int,
	retention time.Duration,
) *OrderUsecase {
	return &OrderUsecase{
		store:     store,
		notifier:  notifier,
		validator: validator,
		clock:     clock,
		unitPrice: unitPrice,
		retention: retention,
	}
}

type PlaceOrderInput struct {
	Product  string
	Quantity int
	Location string
}

// PlaceOrder は注文を1件作って保存し、購読者へ知らせる
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (model.Order, error) {
	if err := u.validator.ValidateSubmission(in.Product, in.Quantity, in.Location); err != nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	now := u.clock.Now()

	//先に期限切れを捨ててから追加する
	orders, err := u.store.Prune(ctx, now)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	order := model.Order{
		Product:    in.Product,
		Quantity:   in.Quantity,
		TotalPrice: in.Quantity * u.unitPrice,
		Location:   in.Location,
		CreatedAt:  now,
		ExpiresAt:  now.Add(u.retention),
	}

	orders = append(orders, order)
	if err := u.store.Save(ctx, orders); err != nil {
		//保存できなければ注文は成立しない。通知もしない
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	u.notifier.Broadcast(order)

	return order, nil
}

// ListActive は期限切れを整理した上で現在の注文一覧を返す
func (u *OrderUsecase) ListActive(ctx context.Context) ([]model.Order, error) {
	orders, err := u.store.Prune(ctx, u.clock.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return orders, nil
}
