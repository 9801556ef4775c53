package repository

import (
	"context"
	"errors"
	"time"

	"chapati/internal/domain/model"
)

// 保存データが壊れている（自動修復せず運用者に知らせる）
var ErrCorrupted = errors.New("order store corrupted")

// OrderStore は注文一覧の永続化の約束。
// キャッシュは持たず、毎回ストレージを読み直す
type OrderStore interface {
	// 保存済みの注文を挿入順で返す。未作成なら空スライス
	Load(ctx context.Context) ([]model.Order, error)

	// 一覧を丸ごと置き換える（マージはしない）
	Save(ctx context.Context, orders []model.Order) error

	// 期限切れを除いて保存し直し、残った注文を返す
	Prune(ctx context.Context, now time.Time) ([]model.Order, error)
}
