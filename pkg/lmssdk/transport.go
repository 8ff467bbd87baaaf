package lmssdk

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestOptions carries per-call query parameters and header overrides.
type RequestOptions struct {
	Query   url.Values
	Headers map[string]string
}

// authRoutePrefixes lists the authentication surface itself. A 401 from
// these endpoints must never trigger the refresh protocol, otherwise a bad
// login or an expired refresh cookie would loop forever.
var authRoutePrefixes = []string{
	"/api/auth/login",
	"/api/auth/register",
	"/api/auth/refresh-token",
}

func isAuthRoute(path string) bool {
	normalized := strings.ToLower(path)
	for _, p := range authRoutePrefixes {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// do issues an HTTP request against the configured base URL with the bearer
// credential attached. On a 401 from a non-auth route it performs the
// single-flight refresh and retries the original request exactly once; a 401
// on the retry surfaces as ErrAuthExpired. Network errors and non-401
// responses pass through untouched.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	opts *RequestOptions,
) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	retried := false
	for {
		resp, err := c.send(ctx, method, path, payload, opts)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusUnauthorized || isAuthRoute(path) {
			return resp, nil
		}

		drain(resp)

		if retried {
			c.logger().Warn("request unauthorized after refresh",
				"method", method, "path", path)
			return nil, fmt.Errorf("%w: %s %s", ErrAuthExpired, method, path)
		}

		if _, err := c.refreshCredential(ctx); err != nil {
			return nil, err
		}
		retried = true
	}
}

// send builds and executes a single request attempt.
func (c *Client) send(
	ctx context.Context,
	method, path string,
	payload []byte,
	opts *RequestOptions,
) (*http.Response, error) {
	target := c.url(path)
	if opts != nil && len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", newRequestID())

	if cred, err := c.Credentials.Load(); err == nil {
		req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}

	if opts != nil {
		for key, value := range opts.Headers {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// refreshCredential performs the single-flight credential refresh. Concurrent
// callers share one network call and observe the same outcome. On failure the
// stored credential is cleared and the OnAuthLost hook fires; the cycle does
// not retry itself.
func (c *Client) refreshCredential(ctx context.Context) (Credential, error) {
	// The refresh outcome is shared by every waiter, so the first caller's
	// cancelation must not fail it for the rest. The HTTP client timeout
	// still bounds the detached call.
	refreshCtx := context.WithoutCancel(ctx)

	v, err, shared := c.refresh.Do("refresh-token", func() (any, error) {
		cred, err := c.requestRefresh(refreshCtx)
		if err != nil {
			_ = c.Credentials.Clear()
			c.logger().Warn("token refresh failed", "err", err)
			if c.OnAuthLost != nil {
				c.OnAuthLost()
			}
			return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
		}
		if err := c.Credentials.Save(cred); err != nil {
			return nil, fmt.Errorf("store refreshed credential: %w", err)
		}
		return cred, nil
	})
	if err != nil {
		return Credential{}, err
	}
	if shared {
		c.logger().Debug("joined in-flight token refresh")
	}
	return v.(Credential), nil
}

// requestRefresh calls the refresh endpoint directly. No bearer header: the
// refresh token travels as an HTTP-only cookie in the client's jar.
func (c *Client) requestRefresh(ctx context.Context) (Credential, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url("/api/Auth/refresh-token"),
		nil,
	)
	if err != nil {
		return Credential{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Request-ID", newRequestID())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Credential{}, fmt.Errorf("send request: %w", err)
	}

	var tokenResp RefreshTokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return Credential{}, err
	}
	return NewCredential(tokenResp.AccessToken, tokenResp.AccessTokenExpiry), nil
}

// decodeJSON decodes a JSON response into the target value. Responses with
// an unexpected status are parsed into a typed *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkStatus returns a typed error unless the response has the expected
// status. Used for endpoints without a response body.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

var (
	reqIDMu      sync.Mutex
	reqIDEntropy = ulid.Monotonic(rand.Reader, 0)
)

// newRequestID returns a ULID for request correlation in logs.
func newRequestID() string {
	reqIDMu.Lock()
	defer reqIDMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), reqIDEntropy).String()
}
