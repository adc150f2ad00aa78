// Package supabase is a thin typed client for the hosted backend: the
// PostgREST table API and the GoTrue auth API. Nothing in here retries,
// caches, or falls back; the remote service owns every guarantee.
// File: supabase/client.go
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ------------------- client construction -------------------

// ErrMissingCredentials is returned when the endpoint or key is absent.
// main treats it as fatal: the application must not start without both.
var ErrMissingCredentials = errors.New("supabase: SUPABASE_URL and SUPABASE_ANON_KEY must be set")

// Client is a handle for authenticated calls against the remote store.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New builds a Client from the two required environment variables.
func New() (*Client, error) {
	return NewWithCredentials(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
}

// NewWithCredentials builds a Client from explicit values. Tests use this to
// point the client at a local fake server.
func NewWithCredentials(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// From starts a query against one record collection (PostgREST table).
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
		params: url.Values{},
	}
}

// ------------------- request plumbing -------------------

// do issues one HTTP request and decodes the JSON response into dest (when
// dest is non-nil). Error responses are decoded into *Error. The context is
// the caller's; a cancelled request aborts the remote call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, body, dest any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // #nosec

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
