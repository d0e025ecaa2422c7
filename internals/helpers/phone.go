package helpers

import "strings"

// NormalizePhoneE164 menormalkan nomor telepon ke format E.164:
// semua non-digit dibuang, diberi prefix "+", dan kalau tidak ada kode
// negara dipakai defaultCountry (mis. "1").
//
//	"(555) 123-4567" → "+15551234567"
//	"+62 812-3456-789" → "+628123456789"
func NormalizePhoneE164(raw, defaultCountry string) string {
	trimmed := strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(trimmed, "+")

	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	if hasPlus {
		return "+" + digits
	}
	return "+" + defaultCountry + digits
}

// IsPhoneIdentifier true kalau identifier terlihat seperti nomor telepon
// (bukan email): tidak mengandung '@' dan mayoritas karakter digit.
func IsPhoneIdentifier(identifier string) bool {
	s := strings.TrimSpace(identifier)
	if s == "" || strings.Contains(s, "@") {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' || r == '.':
			// separator umum, abaikan
		default:
			return false
		}
	}
	return digits >= 7
}

// PhoneDigits mengembalikan digit saja, untuk synthetic email user.<digits>@<domain>.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
