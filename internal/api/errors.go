package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a server-reported failure: the HTTP status plus the message
// from the {"error": ...} envelope when one was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %s", http.StatusText(e.Status))
}

// Client-side gate and export status errors.
var (
	// ErrAdminRequired aborts an export before any request is made. It is
	// a UX shortcut only; the server independently enforces authorization.
	ErrAdminRequired = errors.New("export requires admin role")

	// ErrLoginRequired maps HTTP 401 on export.
	ErrLoginRequired = errors.New("login required to export CSV")

	// ErrForbidden maps HTTP 403 on export.
	ErrForbidden = errors.New("forbidden: admin only")
)

// decodeError turns a non-2xx response into an *Error, reading the
// {"error"} envelope when the body carries one.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Error
	}
	return apiErr
}
