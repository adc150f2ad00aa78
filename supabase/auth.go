// File: supabase/auth.go
package supabase

import (
	"context"
	"net/http"
	"net/url"

	"retro-meet/models"
)

// ------------------- auth gateway surface -------------------

// Session is what the auth gateway hands back on a successful sign-in or
// token refresh.
type Session struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshGrant struct {
	RefreshToken string `json:"refresh_token"`
}

// SignInWithPassword exchanges email+password for a session. Password
// verification happens entirely on the gateway; a bad pair comes back as an
// *Error with the gateway's message.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	query := url.Values{}
	query.Set("grant_type", "password")

	session := &Session{}
	err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil,
		passwordGrant{Email: email, Password: password}, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// RefreshSession exchanges a refresh token for a fresh session. This is the
// server-side counterpart of the session-change stream a browser client
// would subscribe to.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	query := url.Values{}
	query.Set("grant_type", "refresh_token")

	session := &Session{}
	err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil,
		refreshGrant{RefreshToken: refreshToken}, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetUser returns the user the access token belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, header, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}
