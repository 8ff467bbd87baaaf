package lmssdk

import (
	"context"
	"net/http"
)

// Role of an authenticated account.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
	RoleAdmin   Role = "Admin"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type RegisterResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken       string `json:"accessToken"`
	AccessTokenExpiry string `json:"accessTokenExpiry"`
	Email             string `json:"email"`
	Message           string `json:"message"`
	Role              string `json:"role"`
}

type RefreshTokenResponse struct {
	AccessToken       string `json:"accessToken"`
	AccessTokenExpiry string `json:"accessTokenExpiry"`
	Email             string `json:"email"`
	Message           string `json:"message"`
	Role              string `json:"role"`
}

// MeResponse identifies the authenticated session.
type MeResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Register creates a new account. Registration does not sign the account in;
// call Login afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/Auth/register", req, nil)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password and stores the returned bearer
// credential. The backend also sets the refresh cookie on the HTTP client's
// jar as part of this exchange.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/Auth/login", req, nil)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	if err := c.Credentials.Save(NewCredential(out.AccessToken, out.AccessTokenExpiry)); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the current session's user identity.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/Auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken proactively refreshes the stored credential. Callers that hit
// a 401 do not need this, the transport handles that case on its own; it is
// exposed for consumers that want to refresh ahead of a known expiry. The
// call joins any refresh already in flight.
func (c *Client) RefreshToken(ctx context.Context) (Credential, error) {
	return c.refreshCredential(ctx)
}

// Logout discards the stored credential. The refresh cookie is left to
// expire on its own; the backend does not expose a revocation endpoint.
func (c *Client) Logout() error {
	return c.Credentials.Clear()
}
