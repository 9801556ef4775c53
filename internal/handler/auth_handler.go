package handler

import (
	"errors"
	"net/http"

	"chapati/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	loginUC *usecase.AdminLoginUsecase
}

// DI
func NewAuthHandler(loginUC *usecase.AdminLoginUsecase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
}

// /admin/login のリクエストボディ。
type adminLoginRequest struct {
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), usecase.AdminLoginInput{
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
