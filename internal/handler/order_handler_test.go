package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chapati/internal/config"
	"chapati/internal/domain/model"
	"chapati/internal/handler"
	"chapati/internal/infra/notify"
	infraRepo "chapati/internal/infra/repository"
	"chapati/internal/usecase"
	"chapati/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

// 実物のfileストアとhubを繋いだecho
func newTestApp(t *testing.T) (*echo.Echo, *notify.Hub, *usecase.OrderUsecase, config.Config) {
	t.Helper()

	cfg := config.Config{
		JWTSecret:  "test_secret",
		UnitPrice:  20,
		Retention:  4 * time.Hour,
		Contacts:   []string{"0718 357 737-Alimoo"},
		OrdersFile: filepath.Join(t.TempDir(), "orders.json"),
	}

	store := infraRepo.NewFileOrderStore(cfg.OrdersFile)
	hub := notify.NewHub()
	uc := usecase.NewOrderUsecase(store, hub, validator.NewOrderValidator(), fixedClock{now: testNow}, cfg.UnitPrice, cfg.Retention)

	e := echo.New()
	handler.NewOrderHandler(uc, cfg).RegisterRoutes(e)
	handler.NewAdminOrderHandler(uc, hub).RegisterRoutes(e, cfg)

	return e, hub, uc, cfg
}

func postForm(e *echo.Echo, path string, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_FormSubmission(t *testing.T) {
	e, _, _, _ := newTestApp(t)

	rec := postForm(e, "/orders", "product=Chapati&quantity=3&location=Nairobi+CBD")
	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, "Chapati", out.Product)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, 60, out.TotalPrice)
	assert.Equal(t, "Nairobi CBD", out.Location)
	assert.Equal(t, 4*time.Hour, out.ExpiresAt.Sub(out.CreatedAt))
}

func TestCreateOrder_JSONSubmission(t *testing.T) {
	e, _, _, _ := newTestApp(t)

	body := `{"product":"Mandazi","quantity":2,"location":"Westlands"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var out model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 40, out.TotalPrice)
}

func TestCreateOrder_NonNumericQuantity(t *testing.T) {
	e, _, _, _ := newTestApp(t)

	//数値でないquantityは境界で弾かれ、usecaseに届かない
	rec := postForm(e, "/orders", "product=Chapati&quantity=abc&location=CBD")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	e, _, _, _ := newTestApp(t)

	rec := postForm(e, "/orders", "quantity=1&location=CBD")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postForm(e, "/orders", "product=Chapati&quantity=0&location=CBD")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopInfo(t *testing.T) {
	e, _, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/shop", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out handler.ShopInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 20, out.UnitPrice)
	assert.Equal(t, []string{"0718 357 737-Alimoo"}, out.Contacts)
}
