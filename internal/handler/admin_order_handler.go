package handler

import (
	"net/http"

	"chapati/internal/config"
	"chapati/internal/domain/model"
	"chapati/internal/infra/notify"
	"chapati/internal/middleware"
	"chapati/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// 管理画面の注文ボード（スナップショット + ライブ配信）
type AdminOrderHandler struct {
	uc       *usecase.OrderUsecase
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

// DI
func NewAdminOrderHandler(uc *usecase.OrderUsecase, hub *notify.Hub) *AdminOrderHandler {
	return &AdminOrderHandler{
		uc:  uc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			//管理画面は別オリジンから繋ぐ。認可はJWTミドルウェアで済んでいる
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.GET("/live", h.live)
}

// 現在の注文一覧（期限切れ整理済み）を返す
func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// WebSocketで流すイベント
type orderEvent struct {
	Event string      `json:"event"`
	Order model.Order `json:"order"`
}

const eventNewOrder = "new_order"

// 接続中だけ新規注文を受け取る。過去分は /admin/orders で取り直す
func (h *AdminOrderHandler) live(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		//Upgraderがレスポンスを書き終えている
		return nil
	}
	defer conn.Close()

	id, events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	//切断検知のために読み続ける（クライアントからの入力は使わない）
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case order, ok := <-events:
			if !ok {
				return nil
			}
			if err := conn.WriteJSON(orderEvent{Event: eventNewOrder, Order: order}); err != nil {
				return nil
			}
		case <-done:
			return nil
		}
	}
}
