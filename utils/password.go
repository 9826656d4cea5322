package utils

import (
	"errors"
	"strings"
	"unicode"
)

const minPasswordLength = 8

var (
	ErrPasswordTooShort   = errors.New("kata sandi minimal 8 karakter")
	ErrPasswordAllNumeric = errors.New("kata sandi tidak boleh seluruhnya angka")
	ErrPasswordLikeName   = errors.New("kata sandi terlalu mirip dengan username")
)

// ValidatePassword memeriksa kebijakan minimum kekuatan kata sandi:
// panjang minimal, bukan angka semua, dan tidak sama dengan username.
func ValidatePassword(password, username string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	allNumeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return ErrPasswordAllNumeric
	}

	if username != "" && strings.EqualFold(password, username) {
		return ErrPasswordLikeName
	}

	return nil
}
