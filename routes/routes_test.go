package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRoutePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /v1/payments/create-order",
		"POST /v1/payments/verify",
		"POST /v1/payments/manual-submit",
		"GET /v1/payments/status/:id",
		"GET /v1/payments/status-by-order",
		"GET /v1/payments/receipt/:id",
		"GET /v1/payments/receipt/:id/pdf",
		"GET /v1/payments/history",
		"GET /v1/payments/history/lookup",
		"GET /v1/payments/all",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}
}

func TestPaymentHistoryRequiresLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentAllRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareRunsOnRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
