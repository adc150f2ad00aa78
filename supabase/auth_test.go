// file: supabase/auth_test.go
package supabase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retro-meet/supabase"
)

// newFakeGateway serves the slice of the GoTrue surface the application uses.
func newFakeGateway(t *testing.T) *supabase.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("grant_type") {
		case "password":
			var creds struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			if creds.Email != "user@example.com" || creds.Password != "hunter2" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
				return
			}
			fmt.Fprint(w, `{"access_token":"tok-1","refresh_token":"ref-1","expires_in":3600,`+
				`"token_type":"bearer","user":{"id":"user-1","email":"user@example.com"}}`)
		case "refresh_token":
			var body struct {
				RefreshToken string `json:"refresh_token"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body.RefreshToken != "ref-1" {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Invalid Refresh Token"}`)
				return
			}
			fmt.Fprint(w, `{"access_token":"tok-2","refresh_token":"ref-2","expires_in":3600,`+
				`"token_type":"bearer","user":{"id":"user-1","email":"user@example.com"}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"unsupported_grant_type"}`)
		}
	})
	mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"msg":"invalid JWT"}`)
			return
		}
		fmt.Fprint(w, `{"id":"user-1","email":"user@example.com"}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := supabase.NewWithCredentials(server.URL, "anon-key")
	require.NoError(t, err)
	return client
}

func TestSignInWithPassword(t *testing.T) {
	client := newFakeGateway(t)

	session, err := client.SignInWithPassword(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.AccessToken)
	assert.Equal(t, "ref-1", session.RefreshToken)
	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, "user@example.com", session.User.Email)
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	client := newFakeGateway(t)

	_, err := client.SignInWithPassword(context.Background(), "user@example.com", "wrong")

	var apiErr *supabase.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)
	assert.Equal(t, "invalid_grant", apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestRefreshSession(t *testing.T) {
	client := newFakeGateway(t)

	session, err := client.RefreshSession(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", session.AccessToken)
	assert.Equal(t, "ref-2", session.RefreshToken)
}

func TestGetUser(t *testing.T) {
	client := newFakeGateway(t)

	user, err := client.GetUser(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	_, err = client.GetUser(context.Background(), "expired")
	var apiErr *supabase.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid JWT", apiErr.Message)
}
