// Package token signs and verifies the bearer tokens issued at login.
//
// Tokens are HMAC-SHA256 JWTs signed with a single process-wide secret;
// there is no key versioning or rotation, and no revocation before expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is returned by Decode for every failure mode: bad
// signature, malformed structure, wrong algorithm, or expiry. Callers must
// not distinguish them; the root cause stays wrapped for internal logging.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload embedded in every token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Codec issues and decodes tokens. It is stateless and safe for
// concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls
// back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for subject with the given role, expiring
// ttl from now.
func (c *Codec) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Role: role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies raw and returns its claims. Any failure collapses into
// ErrInvalidToken with the cause wrapped.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
