package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// EntryForm is the body of a create-transaction request.
type EntryForm struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateTransaction posts a new ledger entry. The response body is not
// inspected: the caller follows up with a reset reload of the filter
// date, and that reload is what reflects reality.
func (c *Client) CreateTransaction(ctx context.Context, form EntryForm) error {
	if err := c.postJSON(ctx, "/api/messages", form, nil); err != nil {
		// Transport failures still propagate; server-side rejections do
		// not, matching the fire-and-forget submit contract.
		var apiErr *Error
		if errors.As(err, &apiErr) {
			c.log.Debug("create not acknowledged", "status", apiErr.Status)
			return nil
		}
		return err
	}
	return nil
}

// listPayload accepts both response shapes of the list endpoint: a bare
// array of transactions, or an {items,total} envelope. Both normalize
// into the canonical ListPage.
type listPayload model.ListPage

func (p *listPayload) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Items []model.Transaction `json:"items"`
		Total *int                `json:"total"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Items != nil {
		p.Items = envelope.Items
		if envelope.Total != nil {
			p.Total = *envelope.Total
		} else {
			p.Total = len(envelope.Items)
		}
		return nil
	}

	var items []model.Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("list response is neither envelope nor array: %w", err)
	}
	p.Items = items
	p.Total = len(items)
	return nil
}

// ListTransactions fetches one page of transactions for a date.
func (c *Client) ListTransactions(ctx context.Context, date string, page, perPage int) (model.ListPage, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var payload listPayload
	if err := c.getJSON(ctx, "/api/messages", query, &payload); err != nil {
		return model.ListPage{}, err
	}
	return model.ListPage(payload), nil
}
