package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrInvalidPaymentInfo is returned when card details fail validation.
var ErrInvalidPaymentInfo = errors.New("invalid payment info")

var validate = validator.New(validator.WithRequiredStructEnabled())

// PaymentInfo holds the card details captured by the mock checkout.
type PaymentInfo struct {
	CardNumber string `json:"card_number" validate:"required,len=16,number"`
	CardName   string `json:"card_name" validate:"required,min=3"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=01/06"`
	CVV        string `json:"cvv" validate:"required,len=3,number"`
}

// Normalize strips the spaces users type between card number groups.
func (p PaymentInfo) Normalize() PaymentInfo {
	p.CardNumber = strings.ReplaceAll(p.CardNumber, " ", "")
	p.CardName = strings.TrimSpace(p.CardName)
	p.ExpiryDate = strings.TrimSpace(p.ExpiryDate)
	p.CVV = strings.TrimSpace(p.CVV)
	return p
}

// Validate reports every failing field.
func (p PaymentInfo) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidPaymentInfo, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPaymentInfo, strings.Join(fields, ", "))
}

// MaskedCard shows only the last four digits.
func (p PaymentInfo) MaskedCard() string {
	n := p.CardNumber
	if len(n) < 4 {
		return "****"
	}
	return "**** **** **** " + n[len(n)-4:]
}

// PaymentRecord is the side-channel entry written on activation.
type PaymentRecord struct {
	AccountID  uuid.UUID
	Plan       Plan
	Info       PaymentInfo
	RecordedAt time.Time
}

// PaymentRepository stores one payment record per account.
type PaymentRepository interface {
	Save(ctx context.Context, record PaymentRecord) error
	// FindByAccountID returns nil when no record exists.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*PaymentRecord, error)
}
