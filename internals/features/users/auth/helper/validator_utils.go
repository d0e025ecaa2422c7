package helpers

import (
	"errors"
	"regexp"
	"strings"

	"taarufku_backend/internals/helpers"
)

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateRegisterInput: identifier boleh email atau nomor telepon.
func ValidateRegisterInput(userName, identifier, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("user_name wajib diisi")
	}
	if len(strings.TrimSpace(userName)) < 3 {
		return errors.New("user_name minimal 3 karakter")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return errors.New("identifier (email atau nomor telepon) wajib diisi")
	}
	if !helpers.IsPhoneIdentifier(identifier) && !isValidEmail(identifier) {
		return errors.New("identifier bukan email atau nomor telepon yang valid")
	}
	return ValidatePassword(password)
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("identifier wajib diisi")
	}
	if password == "" {
		return errors.New("password wajib diisi")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}
