package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository persists accounts and the index used to enumerate them.
type AccountRepository interface {
	// Save writes the account and adds new accounts to the index. It fails
	// with sharedDomain.ErrConcurrentModification if the stored version moved.
	Save(ctx context.Context, account *Account) error
	// FindByID returns nil when the account is missing or unreadable.
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// FindByEmail returns nil when no account has exactly this email.
	FindByEmail(ctx context.Context, email Email) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

// CredentialRepository stores one password hash per account.
type CredentialRepository interface {
	Save(ctx context.Context, accountID uuid.UUID, hash string) error
	// Find returns "" when no credential is stored.
	Find(ctx context.Context, accountID uuid.UUID) (string, error)
}

// SessionStore holds the pointer to the signed-in account. There is at most
// one session per installation.
type SessionStore interface {
	// Current returns uuid.Nil and false when nobody is signed in.
	Current(ctx context.Context) (uuid.UUID, bool, error)
	Start(ctx context.Context, accountID uuid.UUID) error
	End(ctx context.Context) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
