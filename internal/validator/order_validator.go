package validator

import (
	"errors"
	"strings"

	"chapati/internal/usecase"
)

var (
	// 商品名が空
	ErrProductRequired = errors.New("product is required")

	// 数量は1以上
	ErrInvalidQuantity = errors.New("quantity must be 1 or more")

	// 届け先が空
	ErrLocationRequired = errors.New("location is required")
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文フォームの入力を検証。ここを通った入力だけがusecaseに届く
func (v *orderValidator) ValidateSubmission(product string, quantity int, location string) error {
	if strings.TrimSpace(product) == "" {
		return ErrProductRequired
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(location) == "" {
		return ErrLocationRequired
	}
	return nil
}
