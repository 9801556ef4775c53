package server

import (
	"chapati/internal/config"
	"chapati/internal/handler"

	"github.com/labstack/echo/v4"
)

func registerRoutes(
	e *echo.Echo,
	cfg config.Config,
	orderH *handler.OrderHandler,
	adminH *handler.AdminOrderHandler,
	authH *handler.AuthHandler,
) {
	orderH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	adminH.RegisterRoutes(e, cfg)
}
