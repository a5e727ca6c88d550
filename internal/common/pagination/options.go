package pagination

import (
	"errors"

	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
)

var ErrInvalidLimit = errors.New("limit must be greater than zero")

// Options is embedded by list filters that page over the ledger sequence.
type Options struct {
	Limit      int
	NextCursor string
	PrevCursor string
}

// BuildCursorAndLimit returns the decoded cursor (nil on the first page) and the
// row limit to query, one above the page size so the caller can tell a next page exists.
func (o Options) BuildCursorAndLimit() (*Cursor, int, error) {
	if o.Limit < 0 {
		return nil, 0, ErrInvalidLimit
	}

	var (
		cursor *Cursor
		err    error
	)
	switch {
	case o.NextCursor != "":
		cursor, err = ParseCursor(o.NextCursor, false)
	case o.PrevCursor != "":
		cursor, err = ParseCursor(o.PrevCursor, true)
	}
	if err != nil {
		return nil, 0, err
	}

	return cursor, o.PageSize() + constants.OverFetchOffset, nil
}

// PageSize is the limit the caller asked for, without the over-fetch.
func (o Options) PageSize() int {
	switch {
	case o.Limit <= 0:
		return constants.DefaultLimit
	case o.Limit > constants.MaxLimit:
		return constants.MaxLimit
	}
	return o.Limit
}
