package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// DefaultExportName is used when the server sends no usable
// Content-Disposition header.
const DefaultExportName = "messages.csv"

// Download is a file the server asked the client to save.
type Download struct {
	Filename string
	Data     []byte
}

// ExportCSV downloads a CSV statement. When both start and end are set
// the range wins; otherwise the single filter date is used; with neither,
// the server exports everything.
//
// The role gate here is advisory: a non-admin session aborts with
// ErrAdminRequired before any request is made, but the server remains
// the sole trust boundary and answers 401/403 on its own.
func (c *Client) ExportCSV(ctx context.Context, start, end, date string) (*Download, error) {
	if !c.session.IsAdmin() {
		return nil, ErrAdminRequired
	}

	query := url.Values{}
	switch {
	case start != "" && end != "":
		query.Set("start", start)
		query.Set("end", end)
	case date != "":
		query.Set("date", date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/export", query), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /api/export: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrLoginRequired
	case http.StatusForbidden:
		return nil, ErrForbidden
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading export body: %w", err)
	}

	return &Download{
		Filename: dispositionFilename(resp.Header.Get("Content-Disposition"), DefaultExportName),
		Data:     data,
	}, nil
}

// dispositionFilename extracts filename="..." from a Content-Disposition
// header, falling back when the header is absent or malformed.
func dispositionFilename(header, fallback string) string {
	if header == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return fallback
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return fallback
}
