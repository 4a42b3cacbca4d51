package jwt

import (
	"errors"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a token is not three dot-separated segments or
// its payload segment does not decode to a JSON object.
var ErrMalformed = errors.New("malformed bearer token")

// ErrNoSubject is returned when a syntactically valid token carries no subject
// identifier in its payload.
var ErrNoSubject = errors.New("token payload has no subject identifier")

// Claims is the payload shape minted by the backend's /auth/login endpoint.
// UserID is the subject identifier; Subject holds the account email. Role may
// be present but callers are expected to prefer the separately persisted role
// over this claim.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtlib.RegisteredClaims
}

// Email returns the email address carried in the standard subject claim.
func (c *Claims) Email() string {
	return c.Subject
}

// Decode parses the payload of a bearer token without signature verification
// and returns its claims. The token must be exactly three dot-separated
// segments and the middle segment must decode to a JSON object containing a
// user_id; anything else fails with ErrMalformed or ErrNoSubject.
//
// Expiry is intentionally not checked here. A stale token is detected by the
// server on first use and surfaces as a 401, which the gateway turns into a
// forced logout.
func Decode(token string) (*Claims, error) {
	if strings.Count(token, ".") != 2 {
		return nil, ErrMalformed
	}

	claims := &Claims{}
	parser := jwtlib.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformed
	}

	if strings.TrimSpace(claims.UserID) == "" {
		return nil, ErrNoSubject
	}

	return claims, nil
}
