// Package session manages the auth cookie and the local, unverified decode
// of its token payload. The decode is a UI-routing convenience only; the
// remote API is the real authorization boundary.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the auth cookie carrying the bearer token.
const CookieName = "token"

// MaxAge is the cookie lifetime: one week.
const MaxAge = 7 * 24 * 60 * 60

// Status classifies the token attached to a request.
type Status int

const (
	NoToken Status = iota
	Valid
	Expired
	Malformed
)

// Claims is the subset of the token payload the UI cares about.
type Claims struct {
	Role      string
	RoleID    int
	ExpiresAt time.Time
}

// Admin reports whether the decoded claims carry the admin role. UI gating
// only.
func (c Claims) Admin() bool {
	return c.Role == "admin" || c.RoleID == 1
}

// Set writes the auth cookie: http-only, Secure in production,
// SameSite=Strict, one week, path /.
func Set(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, MaxAge, "/", "", secure, true)
}

// Clear evicts the auth cookie.
func Clear(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// Token reads the bearer token from the request cookie, "" when absent.
func Token(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}

// Decode inspects a token without verifying its signature and classifies
// it. Claims are only meaningful for Valid tokens.
func Decode(token string) (Claims, Status) {
	if token == "" {
		return Claims{}, NoToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, Malformed
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, Malformed
	}

	claims := Claims{}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if roleID, ok := mapClaims["roleId"].(float64); ok {
		claims.RoleID = int(roleID)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return Claims{}, Malformed
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
		if exp.Time.Before(time.Now()) {
			return claims, Expired
		}
	}
	return claims, Valid
}
