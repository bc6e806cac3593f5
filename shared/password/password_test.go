package password_test

import (
	"jamat/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "valid password", password: "Sup3rSecret!"},
		{name: "unicode password", password: "سلام-123"},
		{name: "empty password", password: "", expectedErr: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, password.IsHash(hash))

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
		})
	}
}

func TestHashTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.NoError(t, password.Verify("admin123", hash))
	assert.ErrorIs(t, password.Verify("admin124", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("admin123", ""), password.ErrInvalidPassword)
	assert.Error(t, password.Verify("admin123", "not-a-hash"))
}

func TestMatches(t *testing.T) {
	hash, err := password.Hash("admin123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		submitted  string
		configured string
		want       bool
	}{
		{name: "plain match", submitted: "admin123", configured: "admin123", want: true},
		{name: "plain mismatch", submitted: "admin12", configured: "admin123"},
		{name: "hash match", submitted: "admin123", configured: hash, want: true},
		{name: "hash mismatch", submitted: "wrong", configured: hash},
		{name: "empty configured", submitted: "admin123", configured: ""},
		{name: "empty submitted", submitted: "", configured: "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, password.Matches(tt.submitted, tt.configured))
		})
	}
}
