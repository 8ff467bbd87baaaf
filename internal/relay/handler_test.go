package relay

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		FrontendCallbackURL: "http://localhost:3000/teachers/billing/callback",
		BillingURL:          "http://localhost:3000/teachers/billing",
		CallbackRatePerSec:  100,
		CallbackBurst:       100,
	}
}

func testHandler(cfg Config) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(cfg, logger).Router()
}

func TestRedirectPreservesQuery(t *testing.T) {
	t.Parallel()

	router := testHandler(testConfig())

	req := httptest.NewRequest(http.MethodGet,
		"/payments/callback?errorCode=0&orderId=ORD1&transId=999&amount=150000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/teachers/billing/callback", location.Path)

	q := location.Query()
	assert.Equal(t, "0", q.Get("errorCode"))
	assert.Equal(t, "ORD1", q.Get("orderId"))
	assert.Equal(t, "999", q.Get("transId"))
	assert.Equal(t, "150000", q.Get("amount"))
}

func TestRedirectWithoutParamsFallsBackToBilling(t *testing.T) {
	t.Parallel()

	router := testHandler(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/payments/callback", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		"http://localhost:3000/teachers/billing?paymentResult=failed",
		rec.Header().Get("Location"))
}

func TestNotificationFlattensBody(t *testing.T) {
	t.Parallel()

	router := testHandler(testConfig())

	body := `{"errorCode": 0, "orderId": "ORD1", "transId": 999, "extraData": null}`
	req := httptest.NewRequest(http.MethodPost, "/payments/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)

	q := location.Query()
	assert.Equal(t, "0", q.Get("errorCode"))
	assert.Equal(t, "ORD1", q.Get("orderId"))
	assert.Equal(t, "999", q.Get("transId"))
	assert.False(t, q.Has("extraData"), "null values are dropped")
}

func TestNotificationBadBodyFallsBackToBilling(t *testing.T) {
	t.Parallel()

	router := testHandler(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/payments/callback", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "paymentResult=failed")
}

func TestCallbackRateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CallbackRatePerSec = 0.001
	cfg.CallbackBurst = 2
	router := testHandler(cfg)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/payments/callback?errorCode=0&transId=1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusFound, http.StatusFound, http.StatusTooManyRequests}, statuses)
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	router := NewHandler(testConfig(), logger).Router()

	req := httptest.NewRequest(http.MethodGet,
		"/payments/callback?errorCode=0&orderId=ORD1&transId=999", nil)
	req.Header.Set("X-Request-ID", "REQ123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "REQ123", rec.Header().Get("X-Request-ID"))

	// The per-request log lines carry the request id.
	out := buf.String()
	assert.Contains(t, out, "gateway callback received")
	assert.Contains(t, out, "req_id=REQ123")
}

func TestLivez(t *testing.T) {
	t.Parallel()

	router := testHandler(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
