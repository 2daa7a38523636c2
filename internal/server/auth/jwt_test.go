package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secretKey")

	token, err := GenerateToken("liam@example.com", secret, time.Hour)
	require.NoError(t, err)

	email, err := EmailFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "liam@example.com", email)
}

func TestEmailFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("liam@example.com", []byte("secretKey"), time.Hour)
	require.NoError(t, err)

	_, err = EmailFromToken(token, []byte("otherKey"))
	assert.Error(t, err)
}

func TestEmailFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("liam@example.com", []byte("secretKey"), -time.Minute)
	require.NoError(t, err)

	_, err = EmailFromToken(token, []byte("secretKey"))
	assert.Error(t, err)
}

func TestEmailFromToken_Garbage(t *testing.T) {
	_, err := EmailFromToken("not-a-token", []byte("secretKey"))
	assert.Error(t, err)
}
