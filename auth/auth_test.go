package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "UnMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)

	_, err = ComparePassword(password, "not-a-hash")
	req.Error(err)
}

func TestHashIsSalted(t *testing.T) {
	req := require.New(t)
	first, err := HashPassword("password")
	req.NoError(err)
	second, err := HashPassword("password")
	req.NoError(err)
	// Fresh random salt per call, so identical secrets never produce
	// identical hashes.
	req.NotEqual(first, second)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"Henrietta", "ComplexPass123!"}, false},
		{"Name too short", RegisterRequest{"H", "ComplexPass123!"}, true},
		{"Name with spaces", RegisterRequest{"Henrietta L", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"Henrietta", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"Henrietta", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"Henrietta", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"Henrietta", "nouppercase123!"}, true},
		{"Password too long (edge case)", RegisterRequest{"Henrietta", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("some-user-id", "Gertrude", time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("some-user-id", claims.UserID)
	req.Equal("Gertrude", claims.Name)
	req.Equal("chat-bootstrap", claims.Issuer)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("some-user-id", "Gertrude", -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

// BenchmarkHashPassword measures the CPU/RAM cost of one derivation.
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
