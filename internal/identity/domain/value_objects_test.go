package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"valid", "ana@example.com", "ana@example.com", nil},
		{"trims whitespace", "  ana@example.com ", "ana@example.com", nil},
		{"keeps case", "Ana@Example.com", "Ana@Example.com", nil},
		{"missing at", "ana.example.com", "", ErrInvalidEmail},
		{"empty", "", "", ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestEmail_EqualsIsCaseSensitive(t *testing.T) {
	a, _ := NewEmail("ana@example.com")
	b, _ := NewEmail("ANA@example.com")
	c, _ := NewEmail("ana@example.com")
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(c))
}

func TestNewName(t *testing.T) {
	n, err := NewName(" Ana Souza ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", n.String())
	assert.Equal(t, "Ana", n.FirstName())

	_, err = NewName("")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewName(strings.Repeat("x", MaxNameLength+1))
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestCheckPassword(t *testing.T) {
	assert.ErrorIs(t, CheckPassword("12345"), ErrPasswordTooShort)
	assert.NoError(t, CheckPassword("123456"))
}
