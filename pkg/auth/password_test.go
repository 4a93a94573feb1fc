package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "plain", password: "mysecretpassword"},
		{name: "empty", password: ""},
		{name: "unicode", password: "pässwörd-密码"},
		{name: "72 byte limit", password: strings.Repeat("a", 72)},
		{name: "over 72 bytes", password: strings.Repeat("a", 100), wantErr: bcrypt.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, CheckPassword(tt.password, hash))
		})
	}

	t.Run("salts every hash", func(t *testing.T) {
		h1, err := HashPassword("same")
		require.NoError(t, err)
		h2, err := HashPassword("same")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("  Correct Horse  ")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		mismatch bool
		wantErr  bool
	}{
		{name: "match", password: "  Correct Horse  ", hash: hash},
		{name: "wrong password", password: "battery staple", hash: hash, mismatch: true, wantErr: true},
		{name: "case differs", password: "  correct horse  ", hash: hash, mismatch: true, wantErr: true},
		{name: "trimmed", password: "Correct Horse", hash: hash, mismatch: true, wantErr: true},
		{name: "empty password", password: "", hash: hash, mismatch: true, wantErr: true},
		{name: "malformed hash", password: "x", hash: "notavalidhash", wantErr: true},
		{name: "empty hash", password: "x", hash: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, tt.hash)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.mismatch, err == ErrPasswordMismatch)
		})
	}
}

func TestHashRandomPassword(t *testing.T) {
	h1, err := HashRandomPassword()
	require.NoError(t, err)
	h2, err := HashRandomPassword()
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.ErrorIs(t, CheckPassword("", h1), ErrPasswordMismatch)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("benchmarkpassword")
	}
}
