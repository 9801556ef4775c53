package model

import "time"

// Order は注文1件。作成後は変更されず、期限切れで消えるだけ
type Order struct {
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	TotalPrice int       `json:"total_price"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Active は期限が残っているか。expires_at == now は期限切れ扱い
func (o Order) Active(now time.Time) bool {
	return o.ExpiresAt.After(now)
}
