package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	ContextKeySessionID = "session_id"
)

// SessionConfig holds cookie settings for the shop session.
type SessionConfig struct {
	CookieDomain   string // "" for current domain
	CookiePath     string
	CookieSecure   bool // true for HTTPS only
	CookieSameSite http.SameSite
}

// DefaultSessionConfig returns secure defaults; set CookieSecure=false for
// localhost development.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Session identifies the browser holding the cart. Every cart lives under
// the session id, so one missing cookie means a fresh empty cart stored
// under a newly minted id.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)

		c.Next()
	}
}

// GetSessionID pulls the session id out of the context.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}

func getSessionID(c *gin.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie); err != nil {
		// Malformed cookie: ignore it and mint a new session.
		return ""
	}
	return cookie
}

func setSessionCookie(c *gin.Context, sessionID string, config SessionConfig) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     config.CookiePath,
		Domain:   config.CookieDomain,
		MaxAge:   SessionMaxAge,
		Secure:   config.CookieSecure,
		HttpOnly: true,
		SameSite: config.CookieSameSite,
	})
}
