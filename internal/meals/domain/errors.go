package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSuggestionNotFound = errors.New("meal suggestion not found")
	ErrInvalidSlot        = errors.New("invalid meal slot")
)

// NotFound wraps ErrSuggestionNotFound with the id.
func NotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrSuggestionNotFound, id)
}
