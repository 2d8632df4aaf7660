package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt64Value(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{float64(7), 7},
		{json.Number("42"), 42},
		{"3", 3},
		{" 12 ", 12},
	}
	for _, tc := range cases {
		got, err := Int64Value(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestInt64ValueRejects(t *testing.T) {
	for _, in := range []any{"abc", "1.5", float64(1.5), nil, true, []any{1}} {
		_, err := Int64Value(in)
		require.Error(t, err, "input %v", in)
	}
}
