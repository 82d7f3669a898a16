package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether tok is a JWT whose exp claim lies in the
// past. The token is not verified; the backend does that. Opaque
// non-JWT tokens never expire client-side.
func Expired(tok string, now time.Time) bool {
	if strings.Count(tok, ".") != 2 {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
