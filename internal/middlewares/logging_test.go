package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	handler := middlewares.LoggingMiddleware()(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())

	reqID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, reqID)
	_, err := uuid.Parse(reqID)
	assert.NoError(t, err)
}
