// File: supabase/errors.go
package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"retro-meet/logger"
)

// ErrNoRows is returned by a Single() query that matched nothing.
var ErrNoRows = errors.New("supabase: no rows returned")

// Error carries the remote service's structured error body. PostgREST and
// GoTrue use slightly different field names; decodeError folds both into
// this one shape.
type Error struct {
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.HTTPStatus)
}

// LogError writes an error's message, details, and hint to the error log.
// Controllers call this on every remote-call failure they swallow.
func LogError(err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		logger.Error.Printf("Supabase error: %s details=%q hint=%q code=%s",
			apiErr.Message, apiErr.Details, apiErr.Hint, apiErr.Code)
		return
	}
	logger.Error.Printf("Supabase error: %v", err)
}

// gotrueError is the auth API's error body. Older endpoints use msg, the
// token endpoint uses error/error_description.
type gotrueError struct {
	Msg              string `json:"msg"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// decodeError turns a non-2xx response into an *Error.
func decodeError(resp *http.Response) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if readErr != nil {
		return &Error{Message: readErr.Error(), HTTPStatus: resp.StatusCode}
	}

	apiErr := &Error{HTTPStatus: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Message != "" {
		return apiErr
	}

	var authErr gotrueError
	if err := json.Unmarshal(body, &authErr); err == nil {
		switch {
		case authErr.Msg != "":
			apiErr.Message = authErr.Msg
		case authErr.ErrorDescription != "":
			apiErr.Message = authErr.ErrorDescription
			apiErr.Code = authErr.ErrorCode
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// isNoRows reports whether err is PostgREST's "zero rows in object mode"
// rejection (HTTP 406, code PGRST116).
func isNoRows(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.HTTPStatus == http.StatusNotAcceptable || apiErr.Code == "PGRST116"
}
