package handler

import (
	"net/http"

	"chapati/internal/config"
	"chapati/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 注文フォームの公開API
type OrderHandler struct {
	uc  *usecase.OrderUsecase
	cfg config.Config
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, cfg config.Config) *OrderHandler {
	return &OrderHandler{uc: uc, cfg: cfg}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
	e.GET("/shop", h.shopInfo)
}

// フォームとJSONのどちらでも受ける
type OrderCreateRequest struct {
	Product  string `json:"product" form:"product"`
	Quantity int    `json:"quantity" form:"quantity"`
	Location string `json:"location" form:"location"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		//数量が数値でない場合もここで弾かれる
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Product:  req.Product,
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// フォームページが価格計算と連絡先表示に使う
type ShopInfoResponse struct {
	UnitPrice int      `json:"unit_price"`
	Contacts  []string `json:"contacts"`
}

func (h *OrderHandler) shopInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, ShopInfoResponse{
		UnitPrice: h.cfg.UnitPrice,
		Contacts:  h.cfg.Contacts,
	})
}
