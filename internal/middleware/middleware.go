package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/session"
)

// ClaimsKey is the gin context key holding the decoded session claims for
// admin requests.
const ClaimsKey = "session_claims"

const adminRoot = "/admin"

// SessionGate protects admin-prefixed routes. The token payload is decoded
// locally without signature verification; this only steers the UI, real
// access control lives in the remote API. The login and logout actions must
// stay reachable without a token, so they bypass the redirects.
func SessionGate(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRoot := path == adminRoot || path == adminRoot+"/"
		isAuthAction := path == adminRoot+"/login" || path == adminRoot+"/logout"

		token := session.Token(c)
		claims, status := session.Decode(token)

		switch status {
		case session.NoToken:
			if !isRoot && !isAuthAction {
				c.Redirect(http.StatusFound, adminRoot)
				c.Abort()
				return
			}
		case session.Expired:
			session.Clear(c, secureCookies)
			if isAuthAction || (isRoot && c.Query("session") == "expired") {
				// Second arrival with the marker: let the login page
				// render its explanation, the cookie is now gone.
				break
			}
			c.Redirect(http.StatusFound, adminRoot+"?session=expired")
			c.Abort()
			return
		case session.Malformed:
			session.Clear(c, secureCookies)
			if !isRoot && !isAuthAction {
				c.Redirect(http.StatusFound, adminRoot)
				c.Abort()
				return
			}
		case session.Valid:
			c.Set(ClaimsKey, claims)
		}

		c.Next()
	}
}

// GetClaims returns the decoded claims stored by SessionGate, if any.
func GetClaims(c *gin.Context) (session.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return session.Claims{}, false
	}
	claims, ok := v.(session.Claims)
	return claims, ok
}

// RequestLogger logs every request with zerolog, warning on 4xx and
// erroring on 5xx.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// Recovery converts panics into a logged 500 error page instead of a dead
// connection.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title": "Something went wrong",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
