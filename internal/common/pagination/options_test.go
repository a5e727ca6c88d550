package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_BuildCursorAndLimit(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantLimit  int
		wantCursor *Cursor
		wantErr    error
	}{
		{
			name:      "default limit without cursor",
			opts:      Options{},
			wantLimit: 21,
		},
		{
			name:       "next cursor",
			opts:       Options{Limit: 5, NextCursor: EncodeSequence(42)},
			wantLimit:  6,
			wantCursor: &Cursor{Sequence: 42},
		},
		{
			name:       "prev cursor is backward",
			opts:       Options{Limit: 5, PrevCursor: EncodeSequence(7)},
			wantLimit:  6,
			wantCursor: &Cursor{Sequence: 7, Backward: true},
		},
		{
			name:       "next cursor wins over prev",
			opts:       Options{Limit: 1, NextCursor: EncodeSequence(3), PrevCursor: EncodeSequence(9)},
			wantLimit:  2,
			wantCursor: &Cursor{Sequence: 3},
		},
		{
			name:      "limit capped",
			opts:      Options{Limit: 10000},
			wantLimit: 501,
		},
		{
			name:    "negative limit",
			opts:    Options{Limit: -1},
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "not base64",
			opts:    Options{NextCursor: "%%%"},
			wantErr: ErrInvalidCursor,
		},
		{
			name:    "not a sequence",
			opts:    Options{NextCursor: base64.RawURLEncoding.EncodeToString([]byte("abc"))},
			wantErr: ErrInvalidCursor,
		},
		{
			name:    "negative sequence",
			opts:    Options{PrevCursor: base64.RawURLEncoding.EncodeToString([]byte("seq:-4"))},
			wantErr: ErrInvalidCursor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, limit, err := tt.opts.BuildCursorAndLimit()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestCursor_String(t *testing.T) {
	c, err := ParseCursor(EncodeSequence(1234), false)
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(1234), c.String())
	assert.Equal(t, int64(1234), c.Sequence)
}
