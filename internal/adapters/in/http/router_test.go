package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workload/api"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter serves the real routes on top of zero-valued handlers, so only requests
// rejected before they reach a use case may be sent through it.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := NewRouter(NewServer(CommandHandlers{}, QueryHandlers{}, logger), api.OpenAPISpec, logger)
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(api.OpenAPISpec)
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{orderId}"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/reports/workload.xlsx"))
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_ServesOpenAPIDocument(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/openapi.yml", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestRouter_RejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"malformed order id", http.MethodGet, "/api/v1/orders/not-a-uuid", ""},
		{"missing required fields", http.MethodPost, "/api/v1/orders", `{"op":"1001"}`},
		{"price is not a decimal", http.MethodPost, "/api/v1/orders",
			`{"op":"1001","price":"abc","campaign":"202401","assignedDate":"2024-01-10"}`},
		{"size count is not a number", http.MethodPost, "/api/v1/orders",
			`{"op":"1001","price":"10","campaign":"202401","assignedDate":"2024-01-10","sizeBreakdown":{"S":"five"}}`},
		{"missing progress value", http.MethodPut, "/api/v1/orders/5b3f0a8e-8a53-4b43-9a8f-0d1d5b7a1c11/made", ""},
		{"zero version token", http.MethodDelete, "/api/v1/orders/5b3f0a8e-8a53-4b43-9a8f-0d1d5b7a1c11?version=0", ""},
		{"patch body is not an object", http.MethodPatch, "/api/v1/orders/5b3f0a8e-8a53-4b43-9a8f-0d1d5b7a1c11", `[1,2]`},
		{"short module name", http.MethodPost, "/api/v1/modules", `{"name":"A"}`},
		{"negative headcount", http.MethodPut, "/api/v1/modules/5b3f0a8e-8a53-4b43-9a8f-0d1d5b7a1c11/persons?numPersons=-2", ""},
		{"bad date range", http.MethodGet, "/api/v1/orders/by-date-range?startDate=yesterday&endDate=2024-01-10", ""},
	}

	e := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"code":400`)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/v1/shipments", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
