package notify

import (
	"sync"

	"chapati/internal/domain/model"

	"github.com/google/uuid"
)

// 受け取りの遅い購読者をここまで待てる。溢れたイベントは捨てる
const subscriberBuffer = 16

// Hub は接続中の購読者へ新しい注文を流す。
// 履歴は持たないので、後から繋いだ購読者に過去のイベントは届かない
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]chan model.Order
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]chan model.Order)}
}

// Subscribe は購読チャネルを登録してIDを返す
func (h *Hub) Subscribe() (string, <-chan model.Order) {
	ch := make(chan model.Order, subscriberBuffer)
	id := uuid.NewString()

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	return id, ch
}

// Unsubscribe は購読を解除してチャネルを閉じる
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(ch)
}

// Len は現在の購読者数を返す
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers)
}

// Broadcast は接続中の全購読者へ送る。応答は待たず、再送もしない
func (h *Hub) Broadcast(order model.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- order:
		default:
			//バッファが一杯ならこの購読者には届かない
		}
	}
}
