// Package tokens reads claim hints out of bearer tokens without verifying
// them. The EchoAway backend issues JWTs, but the client holds no key and
// treats the token as opaque for all authorization purposes — the only
// legitimate client-side read is scheduling: "is this token about to expire?".
//
// # What this package must NOT do
//
//   - Treat a decoded claim as proof of anything; only [api.Client.Profile]
//     decides whether a token is still honored.
//   - Import echoaway or any sibling internal package.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when the token does not parse as a JWT at all.
// Opaque tokens are valid credentials; they simply carry no expiry hint.
var ErrNotJWT = errors.New("token is not a jwt")

// Hint is the unverified claim subset useful to the client.
type Hint struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Peek decodes claims without signature verification.
func Peek(token string) (*Hint, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrNotJWT
	}

	hint := &Hint{}
	if sub, err := claims.GetSubject(); err == nil {
		hint.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		hint.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		hint.IssuedAt = iat.Time
	}
	return hint, nil
}

// ExpiresWithin reports whether the token carries an expiry inside the given
// window. Opaque tokens and tokens without an exp claim report false — the
// client has no basis to refresh them eagerly.
func ExpiresWithin(token string, window time.Duration) bool {
	hint, err := Peek(token)
	if err != nil || hint.ExpiresAt.IsZero() {
		return false
	}
	return time.Until(hint.ExpiresAt) <= window
}
