// Package kvstore persists JSON documents under string keys. Every account,
// credential, session pointer and daily record lives in one of its backends.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// KeyMaxLength is the maximum length of a key. Values are unbounded.
const KeyMaxLength = 256

var (
	ErrKeyNotFound      = errors.New("kvstore: key not found")
	ErrMalformedData    = errors.New("kvstore: malformed stored data")
	ErrKeyInvalid       = errors.New("kvstore: key is empty or too long")
	ErrStoreUnavailable = errors.New("kvstore: store unavailable")
)

// Store is a flat key-value namespace.
type Store interface {
	// Get returns ErrKeyNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the whole value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}

func checkKey(key string) error {
	if key == "" || len(key) > KeyMaxLength {
		return ErrKeyInvalid
	}
	return nil
}

// GetJSON decodes the document at key into v. A value that does not parse
// yields an error wrapping ErrMalformedData.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedData, key, err)
	}
	return nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
