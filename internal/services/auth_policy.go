package services

import (
	"errors"
	"strings"
)

const minPasswordLength = 8

var (
	ErrEmailInvalid    = errors.New("email invalid")
	ErrPasswordTooWeak = errors.New("password too weak")
)

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateRegistrationInput(email string, password string) error {
	normalized := NormalizeEmail(email)
	at := strings.Index(normalized, "@")
	if at <= 0 || at == len(normalized)-1 || !strings.Contains(normalized[at+1:], ".") {
		return ErrEmailInvalid
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}
