// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"retro-meet/logger"
	"retro-meet/middleware"
	"retro-meet/supabase"
)

// AuthGateway is the slice of the auth service the sign-in flow needs.
// *supabase.Client satisfies it; tests substitute a mock.
type AuthGateway interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
}

var authGateway AuthGateway

// SetAuthGateway wires the auth gateway used by the sign-in controller.
func SetAuthGateway(gw AuthGateway) {
	authGateway = gw
}

// ------------------ sign-in handling ------------------

// ShowSignIn renders the sign-in form.
func ShowSignIn(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{"Email": ""})
}

// PerformSignIn authenticates the user against the auth gateway and stores
// the session tokens in the cookie session. Password verification is
// entirely the gateway's business; a failure is logged with the gateway's
// message/details/hint and surfaced as a generic form error.
func PerformSignIn(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		logger.Warn.Printf("[%s] PerformSignIn: Missing email or password", middleware.GetRequestID(c))
		c.HTML(http.StatusBadRequest, "signin.html", gin.H{
			"Email": email,
			"Error": "Please fill in all fields.",
		})
		return
	}

	authSession, err := authGateway.SignInWithPassword(c.Request.Context(), email, password)
	if err != nil {
		supabase.LogError(err)
		c.HTML(http.StatusUnauthorized, "signin.html", gin.H{
			"Email": email,
			"Error": "Invalid email or password.",
		})
		return
	}

	session := sessions.Default(c)
	middleware.SetSessionTokens(session, authSession)

	if err := session.Save(); err != nil {
		logger.Error.Printf("[%s] PerformSignIn: Failed to save session: %v", middleware.GetRequestID(c), err)
		c.HTML(http.StatusInternalServerError, "signin.html", gin.H{
			"Email": email,
			"Error": "Internal error, please try again.",
		})
		return
	}

	logger.Info.Printf("[%s] PerformSignIn: User %s signed in", middleware.GetRequestID(c), authSession.User.Email)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and returns the user to the sign-in form.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	userEmail := session.Get(middleware.SessionKeyUserEmail)

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("[%s] Logout: Error saving session during logout: %v", middleware.GetRequestID(c), err)
	} else if userEmail != nil {
		logger.Info.Printf("[%s] Logout: User %s signed out", middleware.GetRequestID(c), userEmail)
	}

	c.Redirect(http.StatusFound, "/signin")
}
