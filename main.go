// main.go
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"retro-meet/controllers"
	"retro-meet/logger"
	"retro-meet/middleware"
	"retro-meet/services"
	"retro-meet/supabase"
)

func main() {
	// .env is optional; deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file loaded:", err)
	}

	logger.SetLogLevel(os.Getenv("APP_ENV"))

	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	// The application must not start without store credentials: fail fast,
	// no fallback.
	store, err := supabase.New()
	if err != nil {
		logger.Error.Fatalf("Failed to create Supabase client: %v", err)
	}

	controllers.SetAuthGateway(store)
	controllers.SetMeetingService(services.NewMeetingService(store))
	middleware.SetSessionRefresher(store)

	// Initialize the router
	router := gin.Default()
	router.Use(middleware.RequestID)

	// Initialize session store
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "secret" // Default for local testing
	}
	cookieStore := cookie.NewStore([]byte(sessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("retrosession", cookieStore))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))

	// Serve static files under /static
	router.Static("/static", "./static")

	// Public routes
	router.GET("/health", controllers.Health)
	router.GET("/signin", controllers.ShowSignIn)
	router.POST("/signin", controllers.PerformSignIn)
	router.GET("/logout", controllers.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/", controllers.Index)
		protected.GET("/create-meeting", controllers.ShowCreateMeeting)
		protected.POST("/create-meeting", controllers.PerformCreateMeeting)
		protected.GET("/join-meeting", controllers.ShowJoinMeeting)
		protected.POST("/join-meeting", controllers.PerformJoinMeeting)
		protected.GET("/my-meetings", controllers.MyMeetings)
		protected.GET("/meeting", controllers.ShowMeetingByQuery) // legacy link shape
		protected.GET("/meeting/:id", controllers.ShowMeeting)
		protected.POST("/meeting/:id/feedback", controllers.SubmitFeedback)
		protected.GET("/meeting/:id/qrcode", controllers.MeetingQRCode)
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info.Printf("Starting server on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}
