package lmssdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// defaultCredentialTTL bounds a credential whose expiry the backend did not
// report and whose token carries no exp claim. Matches the backend's
// one-day cookie lifetime.
const defaultCredentialTTL = 24 * time.Hour

// Credential is the bearer token proving authentication, together with its
// expiry. The token is opaque to the SDK; expiry is only used to decide
// staleness, the transport relies on 401 responses as the source of truth.
type Credential struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsZero reports whether the credential holds no token.
func (c Credential) IsZero() bool { return c.AccessToken == "" }

// Expired reports whether the credential is past its recorded expiry.
func (c Credential) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// NewCredential builds a Credential from a token and the backend's expiry
// string (RFC 3339). When the expiry is absent or malformed it falls back to
// the token's JWT exp claim, and finally to a one-day default.
func NewCredential(token, expiry string) Credential {
	cred := Credential{AccessToken: token}

	if expiry != "" {
		if t, err := time.Parse(time.RFC3339, expiry); err == nil {
			cred.ExpiresAt = t
			return cred
		}
	}

	if t, ok := tokenExpiry(token); ok {
		cred.ExpiresAt = t
		return cred
	}

	cred.ExpiresAt = time.Now().Add(defaultCredentialTTL)
	return cred
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. Verification is the backend's job; the client only needs the
// timestamp.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
