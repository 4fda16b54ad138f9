package recordapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIDDecodesBothShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "bare number", raw: `7`, want: 7},
		{name: "lookup object", raw: `{"Id": 7, "Name": "Ava Stone"}`, want: 7},
		{name: "null object fields", raw: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id lookupID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, lookupID(tt.want), id)
		})
	}
}

func TestLookupIDEncodesAsNumber(t *testing.T) {
	raw, err := json.Marshal(lookupID(3))
	require.NoError(t, err)
	assert.Equal(t, `3`, string(raw))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "date only", in: "2024-03-10", want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "full timestamp", in: "2024-03-10T09:30:00Z", want: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)},
		{name: "empty", in: "", want: time.Time{}},
		{name: "garbage", in: "next tuesday", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseDate(tt.in).Equal(tt.want))
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	in := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10T00:00:00Z", formatDate(in))
	assert.Equal(t, "", formatDate(time.Time{}), "zero time maps to an empty column")

	assert.Nil(t, formatDatePtr(nil))
	assert.Nil(t, parseDatePtr(nil))

	s := "2024-03-10"
	got := parseDatePtr(&s)
	require.NotNil(t, got)
	assert.Equal(t, in, *got)
}
