package kvstore

import "github.com/google/uuid"

// Prefix namespaces every key written by the application.
const Prefix = "fitsmart:"

const (
	// AccountIndexKey holds the JSON array of registered account IDs.
	AccountIndexKey = Prefix + "accounts"
	// SessionKey holds the ID of the signed-in account.
	SessionKey = Prefix + "session:current"
)

// AccountKey is the account document key.
func AccountKey(id uuid.UUID) string { return Prefix + "account:" + id.String() }

// CredentialKey is the password hash key.
func CredentialKey(id uuid.UUID) string { return Prefix + "credential:" + id.String() }

// DailyRecordKey is the daily tracking document key.
func DailyRecordKey(id uuid.UUID) string { return Prefix + "daily:" + id.String() }

// PaymentKey is the mock payment blob key.
func PaymentKey(id uuid.UUID) string { return Prefix + "payment:" + id.String() }
