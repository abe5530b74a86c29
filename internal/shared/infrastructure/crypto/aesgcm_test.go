package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
}

func TestNewAESGCMFromBase64Key(t *testing.T) {
	_, err := NewAESGCMFromBase64Key("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = NewAESGCMFromBase64Key(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = NewAESGCMFromBase64Key("not base64!!")
	assert.Error(t, err)

	enc, err := NewAESGCMFromBase64Key(testKey())
	require.NoError(t, err)
	assert.NotNil(t, enc)
}

func TestAESEncrypter_RoundTrip(t *testing.T) {
	enc, err := NewAESGCMFromBase64Key(testKey())
	require.NoError(t, err)

	plaintext := []byte(`{"card_number":"4111111111111111"}`)
	sealed, err := EncryptToString(enc, plaintext)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "4111")

	again, err := EncryptToString(enc, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per call")

	opened, err := DecryptString(enc, sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestAESEncrypter_DecryptFailures(t *testing.T) {
	enc, err := NewAESGCMFromBase64Key(testKey())
	require.NoError(t, err)

	_, err = enc.Decrypt([]byte("x"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	sealed, err := enc.Encrypt([]byte("secret"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff
	_, err = enc.Decrypt(sealed)
	assert.Error(t, err)
}
