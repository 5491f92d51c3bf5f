package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDashAndEmptyAreSentinelNone(t *testing.T) {
	for _, raw := range []string{"-", "", "  ", " - "} {
		got, err := Normalize(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.True(t, got.None, "raw %q must normalize to NONE", raw)
	}
}

func TestNormalizePlainNumbers(t *testing.T) {
	got, err := Normalize("25000")
	require.NoError(t, err)
	assert.False(t, got.None)
	assert.Equal(t, 25000.0, got.Value)
}

func TestNormalizeCurrencyFormatting(t *testing.T) {
	cases := map[string]float64{
		"$1,001.00":       1001.00,
		"1,000.99":        1000.99,
		"  $25,001 ":      25001,
		"\"99,999,999\"":  99999999,
		"€5 000.50":       5000.50,
	}

	for raw, want := range cases {
		got, err := Normalize(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.False(t, got.None)
		assert.Equal(t, want, got.Value, "raw %q", raw)
	}
}

func TestNormalizeUnparseableValueFails(t *testing.T) {
	_, err := Normalize("n/a")

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "n/a", invalid.Value)
}
