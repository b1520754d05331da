package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := Decode([]byte(s))
	require.NoError(t, err)
	return v
}

// roundTrip serializes an adapted value the way the gateway does and decodes
// it back into its untyped form.
func roundTrip(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return decode(t, string(data))
}

func ptr(f float64) *float64 {
	return &f
}
