package http_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jhoicas/Nomina-api/internal/domain"
	apphttp "github.com/jhoicas/Nomina-api/internal/interfaces/http"
)

// ── Mapeo de errores ──

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.Invalid("cantidad"), http.StatusBadRequest, apphttp.CodeValidation},
		{domain.ErrUnauthorized, http.StatusUnauthorized, apphttp.CodeUnauthorized},
		{fmt.Errorf("%w: rol", domain.ErrForbidden), http.StatusForbidden, apphttp.CodeForbidden},
		{domain.NotFound("venta"), http.StatusNotFound, apphttp.CodeNotFound},
		{domain.ErrNoActivePeriod, http.StatusNotFound, apphttp.CodeNotFound},
		{domain.ErrInsufficientStock, http.StatusConflict, apphttp.CodeInsufficientStock},
		{domain.ErrPeriodClosed, http.StatusConflict, apphttp.CodePeriodClosed},
		{fmt.Errorf("%w: ya cancelada", domain.ErrInvalidState), http.StatusConflict, apphttp.CodeInvalidState},
		{domain.ErrDuplicate, http.StatusConflict, apphttp.CodeDuplicate},
		{domain.ErrCommissionConfig, http.StatusUnprocessableEntity, apphttp.CodeCommissionConfig},
		{errors.New("conexión perdida"), http.StatusInternalServerError, apphttp.CodeInternal},
	}
	for _, tc := range cases {
		status, code := apphttp.StatusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestErrorHandler_OcultaErroresInternos(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: password authentication failed") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "no existe") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "password")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fiber", nil), -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), apphttp.CodeNotFound)
}

// ── Rate limit ──

func TestRateLimit_BloqueaAlSuperarLimite(t *testing.T) {
	lim, err := apphttp.NewLimiter(memory.NewStore(), "2-M")
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(lim), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), apphttp.CodeRateLimited)
}

func TestNewLimiter_FormatoInvalido(t *testing.T) {
	_, err := apphttp.NewLimiter(memory.NewStore(), "diez-por-minuto")
	assert.Error(t, err)
}
