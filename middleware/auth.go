// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"retro-meet/logger"
	"retro-meet/supabase"
)

// session keys shared between the auth middleware and the controllers
const (
	SessionKeyAccessToken  = "accessToken"
	SessionKeyRefreshToken = "refreshToken"
	SessionKeyUserID       = "userID"
	SessionKeyUserEmail    = "userEmail"
	SessionKeyExpiresAt    = "expiresAt"
)

// refreshLeeway renews the access token slightly before it actually expires,
// so a store call never goes out with a token about to lapse mid-flight.
const refreshLeeway = 30 * time.Second

// SessionRefresher renews an expired session from its refresh token.
// *supabase.Client satisfies it; tests substitute a stub.
type SessionRefresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*supabase.Session, error)
}

var sessionRefresher SessionRefresher

// SetSessionRefresher wires the gateway used to renew expired sessions.
func SetSessionRefresher(r SessionRefresher) {
	sessionRefresher = r
}

// SetSessionTokens writes a gateway session into the cookie session,
// including the absolute expiry instant the refresh check runs against.
// The caller still has to Save.
func SetSessionTokens(session sessions.Session, s *supabase.Session) {
	session.Set(SessionKeyAccessToken, s.AccessToken)
	session.Set(SessionKeyRefreshToken, s.RefreshToken)
	session.Set(SessionKeyUserID, s.User.ID)
	session.Set(SessionKeyUserEmail, s.User.Email)
	session.Set(SessionKeyExpiresAt, time.Now().Add(time.Duration(s.ExpiresIn)*time.Second).Unix())
}

// -------------- authentication middleware --------------

// AuthRequired ensures the user holds a signed-in session. There is no role
// model: signed in or not is the entire authorization surface.
// How it works:
// - Retrieves the session from the request context.
// - Checks that an access token is present.
// - If not, redirects to "/signin" and aborts execution.
// - If the token has expired, renews it through the session refresher and
//   saves the fresh tokens; a failed renewal clears the session and
//   redirects to "/signin".
// - Otherwise, the request proceeds.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	token := session.Get(SessionKeyAccessToken)

	if token == nil {
		logger.Warn.Printf("AuthRequired: no session for %s, redirecting to /signin", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/signin")
		c.Abort()
		return
	}

	if expiresAt, ok := session.Get(SessionKeyExpiresAt).(int64); ok && sessionRefresher != nil &&
		time.Now().Add(refreshLeeway).Unix() >= expiresAt {
		refreshToken, _ := session.Get(SessionKeyRefreshToken).(string)

		fresh, err := sessionRefresher.RefreshSession(c.Request.Context(), refreshToken)
		if err != nil {
			logger.Warn.Printf("AuthRequired: session refresh failed for %s: %v", c.Request.URL.Path, err)
			session.Clear()
			if saveErr := session.Save(); saveErr != nil {
				logger.Error.Printf("AuthRequired: failed to clear expired session: %v", saveErr)
			}
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}

		SetSessionTokens(session, fresh)
		if err := session.Save(); err != nil {
			logger.Error.Printf("AuthRequired: failed to save refreshed session: %v", err)
		} else {
			logger.Info.Printf("AuthRequired: session refreshed for user %s", fresh.User.Email)
		}
	}

	logger.Debug.Println("[AuthRequired] User authenticated - proceeding with request")
	c.Next()
}
