package lmssdk

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Client is a client for the LMS backend API. It attaches the stored bearer
// credential to every request and transparently recovers from an expired
// credential by performing one de-duplicated refresh and retrying the
// original request once.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Credentials owns the bearer credential. Defaults to an in-memory
	// store; swap in a file-backed store for persistence across runs.
	Credentials CredentialStore

	// Limiter optionally throttles outbound requests. Nil means unlimited.
	Limiter *rate.Limiter

	// Logger receives transport-level events. Defaults to slog.Default.
	Logger *slog.Logger

	// OnAuthLost is invoked after a failed refresh clears the credential,
	// the place a consumer hooks its redirect-to-sign-in behavior.
	// Called at most once per failed refresh cycle.
	OnAuthLost func()

	// refresh deduplicates concurrent credential refreshes: however many
	// requests hit a 401 at once, only one refresh call goes out and all
	// of them observe its outcome.
	refresh singleflight.Group
}

// NewClient creates a new LMS API client. The HTTP client carries a cookie
// jar because the refresh endpoint is cookie-scoped: the backend sets the
// refresh token as an HTTP-only cookie at login.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
		Credentials: NewMemoryCredentialStore(),
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
