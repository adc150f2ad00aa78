// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"retro-meet/supabase"
)

// setupTestRouter creates a new Gin engine with session middleware and fake
// HTML templates so handlers can render without the real templates directory.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"signin.html":         `<html><body>Sign in. {{.Error}}</body></html>`,
		"home.html":           `<html><body>Welcome {{.Email}}. Create, Join, My Meetings.</body></html>`,
		"create_meeting.html": `<html><body>Create. {{.Error}} {{.Title}}</body></html>`,
		"join_meeting.html":   `<html><body>Join. {{.CodeError}} {{.Error}}</body></html>`,
		"meeting.html":        `<html><body>{{.Meeting.Title}} {{range .Feedbacks}}[{{.Type}}: {{.Content}}]{{end}}</body></html>`,
		"my_meetings.html":    `<html><body>{{.Error}}{{range .Meetings}}({{.Title}}){{end}}</body></html>`,
		"not_found.html":      `<html><body>Meeting not found</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper
// route and returns the session cookie for subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

// MockAuthGateway is a testify mock of the AuthGateway interface.
type MockAuthGateway struct {
	mock.Mock
}

var _ AuthGateway = (*MockAuthGateway)(nil)

// SignInWithPassword (Mocked)
func (m *MockAuthGateway) SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.Session), args.Error(1)
}
