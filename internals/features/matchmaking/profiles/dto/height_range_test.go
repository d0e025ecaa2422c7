package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightRangeNumericPair(t *testing.T) {
	var h HeightRange
	require.NoError(t, json.Unmarshal([]byte(`[155, 175]`), &h))
	assert.Equal(t, 155, h.Min)
	assert.Equal(t, 175, h.Max)
}

func TestHeightRangeFreeText(t *testing.T) {
	tests := []struct {
		text     string
		min, max int
	}{
		{`"155cm - 175cm"`, 155, 175},
		{`"between 160 and 180"`, 160, 180},
		{`"160-170-180"`, 160, 170}, // dua angka pertama yang dipakai
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var h HeightRange
			require.NoError(t, json.Unmarshal([]byte(tt.text), &h))
			assert.Equal(t, tt.min, h.Min)
			assert.Equal(t, tt.max, h.Max)
		})
	}
}

func TestHeightRangeFallbackDefault(t *testing.T) {
	for _, raw := range []string{`"tall please"`, `"170cm"`, `""`, `[160]`} {
		var h HeightRange
		require.NoError(t, json.Unmarshal([]byte(raw), &h), raw)
		assert.Equal(t, DefaultHeightMinCM, h.Min, raw)
		assert.Equal(t, DefaultHeightMaxCM, h.Max, raw)
	}
}

func TestHeightRangeMarshalsAsPair(t *testing.T) {
	out, err := json.Marshal(HeightRange{Min: 150, Max: 190})
	require.NoError(t, err)
	assert.JSONEq(t, `[150, 190]`, string(out))
}
