package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Account field rules. Checks run in a fixed order and the first failure
// wins, so clients always get the same message for the same bad input.

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSymbols = "!@#$%^&*"

var (
	ErrFieldsRequired  = errors.New("All fields are required")
	ErrNameLength      = errors.New("Name must be 20-60 characters")
	ErrAddressLength   = errors.New("Address must be max 400 characters")
	ErrPasswordLength  = errors.New("Password must be 8-16 characters")
	ErrPasswordCompose = errors.New("Password must contain at least one uppercase letter and one special character")
	ErrEmailFormat     = errors.New("Invalid email format")
)

func Account(name, email, password, address string) error {
	if name == "" || email == "" || password == "" || address == "" {
		return ErrFieldsRequired
	}
	// lengths count characters, not bytes
	if n := utf8.RuneCountInString(name); n < 20 || n > 60 {
		return ErrNameLength
	}
	if utf8.RuneCountInString(address) > 400 {
		return ErrAddressLength
	}
	if err := Password(password); err != nil {
		return err
	}
	if !emailRe.MatchString(email) {
		return ErrEmailFormat
	}
	return nil
}

func Password(p string) error {
	if n := utf8.RuneCountInString(p); n < 8 || n > 16 {
		return ErrPasswordLength
	}
	hasUpper := false
	for _, r := range p {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper || !strings.ContainsAny(p, passwordSymbols) {
		return ErrPasswordCompose
	}
	return nil
}
