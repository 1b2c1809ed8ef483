package api

import (
	"context"
	"net/url"

	"github.com/tally-dev/tally/internal/model"
)

// Balance fetches the running total for a date. A response without a
// total decodes as zero.
func (c *Client) Balance(ctx context.Context, date string) (model.Balance, error) {
	query := url.Values{}
	query.Set("date", date)

	var balance model.Balance
	if err := c.getJSON(ctx, "/api/balance", query, &balance); err != nil {
		return model.Balance{}, err
	}
	if balance.Date == "" {
		balance.Date = date
	}
	return balance, nil
}
