// Package controllers file: controllers/home_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"retro-meet/logger"
	"retro-meet/middleware"
)

// Index renders the home screen: three navigation cards (create a meeting,
// join a meeting, view my meetings). AuthRequired has already bounced
// anonymous visitors to /signin before this runs.
func Index(c *gin.Context) {
	session := sessions.Default(c)
	email, _ := session.Get(middleware.SessionKeyUserEmail).(string)

	logger.Info.Printf("[%s] Index: Rendering home page for %s", middleware.GetRequestID(c), email)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Email": email,
	})
}

// Health reports liveness for load balancer checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
