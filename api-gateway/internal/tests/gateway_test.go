package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"overcooked-storefront/api-gateway/internal/gateway"
	"overcooked-storefront/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_StorefrontRoutes(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart/items"},
		{http.MethodPatch, "/api/cart/items/product/7"},
		{http.MethodPost, "/api/checkout"},
		{http.MethodGet, "/api/catalog/menu"},
		{http.MethodGet, "/api/categories"},
		{http.MethodGet, "/api/orders/12/qrcode"},
		{http.MethodPut, "/api/settings"},
		{http.MethodGet, "/api/admin/catalog/product"},
	}

	for _, testCase := range tests {
		t.Run(testCase.method+" "+testCase.path, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{StorefrontSvcURL: "http://storefront-svc"}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method &&
					req.URL.String() == "http://storefront-svc"+testCase.path
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"ok":true`)
		})
	}
}

func TestGateway_RouteHandler_AnalyticsRoutes(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		StorefrontSvcURL: "http://storefront-svc",
		AnalyticsSvcURL:  "http://analytics-svc",
	}, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://analytics-svc/api/analytics/top-today?limit=5"
	})).Return(okResponse(`{"period":"today","items":[]}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-today?limit=5", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"period":"today"`)
}

func TestGateway_RouteHandler_ForwardsQueryAndSessionHeader(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontSvcURL: "http://storefront-svc"}, mockClient)

	resp := okResponse(`[]`)
	resp.Header.Set("X-Cart-Session", "3b0f6c5e-8f43-4a39-9f4e-0b9d5f1f2a11")
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.RawQuery == "category=3" &&
			req.Header.Get("X-Cart-Session") == "3b0f6c5e-8f43-4a39-9f4e-0b9d5f1f2a11"
	})).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/product?category=3", nil)
	req.Header.Set("X-Cart-Session", "3b0f6c5e-8f43-4a39-9f4e-0b9d5f1f2a11")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "3b0f6c5e-8f43-4a39-9f4e-0b9d5f1f2a11", rr.Header().Get("X-Cart-Session"))
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		StorefrontSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_PassesUpstreamStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontSvcURL: "http://storefront-svc"}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusConflict,
		Body:       io.NopCloser(strings.NewReader("insufficient stock: Latte\n")),
		Header:     make(http.Header),
	}
	mockClient.On("Do", mock.Anything).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "insufficient stock")
}

func TestGateway_SetupRoutes_ServesSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>storefront</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('cart')"), 0o644))

	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil)
	router := gw.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "storefront")

	req = httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cart")
}
