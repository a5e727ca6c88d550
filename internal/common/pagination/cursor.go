package pagination

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

const cursorPrefix = "seq:"

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor points at the ledger sequence a page starts after (or before, when Backward).
type Cursor struct {
	Sequence int64
	Backward bool
}

// EncodeSequence is the opaque form handed to API callers as nextCursor / prevCursor.
func EncodeSequence(sequence int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.FormatInt(sequence, 10)))
}

func (c Cursor) String() string {
	return EncodeSequence(c.Sequence)
}

// ParseCursor reverses EncodeSequence.
func ParseCursor(s string, backward bool) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	seq, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return nil, ErrInvalidCursor
	}

	n, err := strconv.ParseInt(seq, 10, 64)
	if err != nil || n < 0 {
		return nil, ErrInvalidCursor
	}

	return &Cursor{Sequence: n, Backward: backward}, nil
}
