package dto

import (
	"encoding/json"
	"regexp"
)

// Default kalau teks tinggi badan tidak bisa diparse.
const (
	DefaultHeightMinCM = 150
	DefaultHeightMaxCM = 190
)

var digitRuns = regexp.MustCompile(`\d+`)

// HeightRange menerima dua bentuk dari klien:
//   - pasangan numerik: [155, 175]
//   - teks bebas: "155cm - 175cm" (dua angka pertama dipakai)
//
// Teks dengan kurang dari dua angka jatuh ke default [150, 190].
type HeightRange struct {
	Min int
	Max int
}

func (h *HeightRange) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) >= 2 {
			h.Min, h.Max = int(pair[0]), int(pair[1])
		} else {
			h.Min, h.Max = DefaultHeightMinCM, DefaultHeightMaxCM
		}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	h.Min, h.Max = ParseHeightRangeText(text)
	return nil
}

func (h HeightRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{h.Min, h.Max})
}

// ParseHeightRangeText memindai semua deret digit; dua pertama jadi [min, max].
func ParseHeightRangeText(text string) (int, int) {
	runs := digitRuns.FindAllString(text, -1)
	if len(runs) < 2 {
		return DefaultHeightMinCM, DefaultHeightMaxCM
	}
	return atoiSafe(runs[0]), atoiSafe(runs[1])
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
