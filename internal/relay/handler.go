package relay

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/jonny-tran/lms-math-exam/pkg/paymentx"
	"github.com/jonny-tran/lms-math-exam/pkg/slogx"
)

// Handler relays the payment gateway's redirect to the front-end callback
// page with the query preserved. The gateway cannot always be pointed at the
// front-end directly; this service is the configurable hop in between.
type Handler struct {
	cfg     Config
	logger  *slog.Logger
	limiter *rate.Limiter
}

func NewHandler(cfg Config, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.CallbackRatePerSec), cfg.CallbackBurst),
	}
}

// Router builds the relay's HTTP mux. Every route runs behind the logging
// middleware, which tags a request-scoped logger with the request id.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /payments/callback", h.handleRedirect)
	mux.HandleFunc("POST /payments/callback", h.handleNotification)
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return slogx.HTTPMiddleware(h.logger)(mux)
}

// handleRedirect receives the gateway's browser redirect (GET with the
// outcome in the query string) and forwards the user to the front-end
// callback page.
func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}

	logger := slogx.FromContext(r.Context())

	query := r.URL.Query()
	if len(query) == 0 {
		logger.Warn("callback redirect without parameters")
		h.redirectFailed(w, r)
		return
	}

	result := paymentx.ParseCallback(query)
	logger.Info("gateway callback received",
		"order_id", result.OrderID,
		"trans_id", result.TransID,
		"error_code", result.ErrorCode,
		"succeeded", result.Succeeded())

	h.redirectWithQuery(w, r, query)
}

// handleNotification receives the gateway's server-to-server notification
// (POST with a JSON body) and forwards it the same way, body flattened into
// query parameters.
func (h *Handler) handleNotification(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}

	logger := slogx.FromContext(r.Context())

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("callback notification with bad body", "err", err)
		h.redirectFailed(w, r)
		return
	}

	query := url.Values{}
	for key, value := range body {
		if value == nil {
			continue
		}
		query.Set(key, fmt.Sprint(value))
	}

	result := paymentx.ParseCallback(query)
	logger.Info("gateway notification received",
		"order_id", result.OrderID,
		"trans_id", result.TransID,
		"error_code", result.ErrorCode)

	h.redirectWithQuery(w, r, query)
}

func (h *Handler) redirectWithQuery(w http.ResponseWriter, r *http.Request, query url.Values) {
	target, err := url.Parse(h.cfg.FrontendCallbackURL)
	if err != nil {
		slogx.FromContext(r.Context()).Error("invalid frontend callback url", "err", err)
		h.redirectFailed(w, r)
		return
	}

	target.RawQuery = query.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (h *Handler) redirectFailed(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.cfg.BillingURL+"?paymentResult=failed", http.StatusFound)
}
