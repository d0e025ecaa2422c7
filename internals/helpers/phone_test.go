package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneE164(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		defaultCountry string
		want           string
	}{
		{"us format with separators", "(555) 123-4567", "1", "+15551234567"},
		{"already e164", "+15551234567", "1", "+15551234567"},
		{"plus with separators", "+62 812-3456-789", "1", "+628123456789"},
		{"bare digits get default country", "5551234567", "1", "+15551234567"},
		{"other default country", "081234567890", "62", "+62081234567890"},
		{"empty input", "", "1", ""},
		{"no digits", "abc", "1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneE164(tt.raw, tt.defaultCountry))
		})
	}
}

func TestIsPhoneIdentifier(t *testing.T) {
	assert.True(t, IsPhoneIdentifier("(555) 123-4567"))
	assert.True(t, IsPhoneIdentifier("+628123456789"))
	assert.False(t, IsPhoneIdentifier("user@example.com"))
	assert.False(t, IsPhoneIdentifier("12345"))   // terlalu pendek
	assert.False(t, IsPhoneIdentifier("abc1234567")) // huruf bukan separator
	assert.False(t, IsPhoneIdentifier(""))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "15551234567", PhoneDigits("+15551234567"))
	assert.Equal(t, "", PhoneDigits("+"))
}
