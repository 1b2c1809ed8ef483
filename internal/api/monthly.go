package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// MonthlyResult is either a parsed summary (format=json) or a raw file
// download (any other format; the body is not parsed).
type MonthlyResult struct {
	Summary  *model.MonthlySummary
	Download *Download
}

// flexString decodes a JSON value that may arrive as a string or a bare
// number; the server is inconsistent about year and month.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// MonthlySummary fetches the aggregation for year/month. Format "json"
// yields a parsed summary; any other format is treated as a file
// download and returned unparsed.
func (c *Client) MonthlySummary(ctx context.Context, year, month, format string) (*MonthlyResult, error) {
	query := url.Values{}
	query.Set("year", year)
	query.Set("month", month)
	query.Set("format", format)

	if format == "json" {
		var payload struct {
			Year  flexString       `json:"year"`
			Month flexString       `json:"month"`
			Total decimal.Decimal  `json:"total"`
			ByDay []model.DayTotal `json:"by_day"`
		}
		if err := c.getJSON(ctx, "/api/monthly", query, &payload); err != nil {
			return nil, err
		}
		return &MonthlyResult{Summary: &model.MonthlySummary{
			Year:  string(payload.Year),
			Month: string(payload.Month),
			Total: payload.Total,
			ByDay: payload.ByDay,
		}}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/monthly", query), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /api/monthly: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading monthly download: %w", err)
	}

	fallback := fmt.Sprintf("monthly_%s_%s.%s", year, month, format)
	return &MonthlyResult{Download: &Download{
		Filename: dispositionFilename(resp.Header.Get("Content-Disposition"), fallback),
		Data:     data,
	}}, nil
}
