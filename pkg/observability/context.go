package observability

import (
	"context"

	"github.com/google/uuid"
)

// Log attribute names.
const (
	CorrelationIDKey = "correlation_id"
	AccountIDKey     = "account_id"
	OperationKey     = "operation"
	DurationKey      = "duration_ms"
)

type (
	correlationIDKey struct{}
	accountIDKey     struct{}
	operationKey     struct{}
)

// WithCorrelationID tags ctx with id, generating one when id is empty. Every
// CLI invocation gets its own.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey{})
}

// WithAccountID tags ctx with the signed-in account.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID.String())
}

func AccountIDFromContext(ctx context.Context) string {
	return stringValue(ctx, accountIDKey{})
}

// WithOperation tags ctx with the running command path.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func OperationFromContext(ctx context.Context) string {
	return stringValue(ctx, operationKey{})
}

func stringValue(ctx context.Context, key any) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(key).(string)
	return s
}
