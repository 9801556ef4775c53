package server

import (
	"chapati/internal/config"
	"chapati/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はルート登録済みのechoインスタンスを返す
func New(
	cfg config.Config,
	orderH *handler.OrderHandler,
	adminH *handler.AdminOrderHandler,
	authH *handler.AuthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	registerRoutes(e, cfg, orderH, adminH, authH)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
