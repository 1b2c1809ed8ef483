// Package feed tracks the listing cursor: which date is filtered, which
// page to fetch next, and the rows accumulated so far.
package feed

import (
	"github.com/tally-dev/tally/internal/model"
)

// Token identifies one load gesture. A response is applied only while its
// token is still the latest issued, so a stale response can never
// overwrite newer state.
type Token uint64

// Feed holds the listing state for one filter date.
//
// Page always points at the NEXT page to fetch, not the page just
// fetched: after applying a page, the counter advances iff
// page*perPage < total. Once that invariant fails the counter stays put,
// and further loads re-fetch the same page.
type Feed struct {
	date    string
	page    int
	perPage int

	seq  uint64
	rows []model.Transaction
}

// New creates a Feed for date, positioned at page 1.
func New(date string, perPage int) *Feed {
	if perPage < 1 {
		perPage = 1
	}
	return &Feed{date: date, page: 1, perPage: perPage}
}

// Date returns the filter date.
func (f *Feed) Date() string { return f.date }

// Page returns the next page to fetch.
func (f *Feed) Page() int { return f.page }

// PerPage returns the page size.
func (f *Feed) PerPage() int { return f.perPage }

// Rows returns the rows accumulated by applied loads.
func (f *Feed) Rows() []model.Transaction { return f.rows }

// SetDate switches the filter date. Changing the filter always rewinds to
// page 1 and discards accumulated rows.
func (f *Feed) SetDate(date string) {
	if date != f.date {
		f.date = date
		f.Reset()
	}
}

// Reset rewinds to page 1 and discards accumulated rows.
func (f *Feed) Reset() {
	f.page = 1
	f.rows = nil
}

// Begin marks the start of a load gesture and returns its token.
// Beginning a new load invalidates all earlier tokens.
func (f *Feed) Begin() Token {
	f.seq++
	return Token(f.seq)
}

// Apply appends a fetched page to the feed and advances the page counter
// if more rows remain on the server. It reports whether the page was
// applied; a stale token is discarded without touching any state.
func (f *Feed) Apply(tok Token, page model.ListPage) bool {
	if uint64(tok) != f.seq {
		return false
	}
	f.rows = append(f.rows, page.Items...)
	if f.page*f.perPage < page.Total {
		f.page++
	}
	return true
}
