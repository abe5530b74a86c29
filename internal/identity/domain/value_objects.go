package domain

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrPasswordTooShort = errors.New("password must have at least 6 characters")
)

const (
	// MaxNameLength is the maximum allowed display name length.
	MaxNameLength = 255
	// MinPasswordLength is enforced on registration.
	MinPasswordLength = 6
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated address. Case is preserved: two addresses that differ
// only in case belong to different accounts.
type Email struct {
	value string
}

// NewEmail trims and validates an address.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if !emailRegex.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }

// Equals is an exact, case-sensitive comparison.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// Name is a display name.
type Name struct {
	value string
}

// NewName creates a validated name.
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, ErrEmptyName
	}
	if len(value) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// FirstName returns the first word of the name, used in greetings.
func (n Name) FirstName() string {
	first, _, _ := strings.Cut(n.value, " ")
	return first
}

// CheckPassword applies the registration password policy.
func CheckPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
