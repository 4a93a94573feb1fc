package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisWithClient(client), mr
}

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"simple id", "123", "user:123"},
		{"objectid format", "507f1f77bcf86cd799439011", "user:507f1f77bcf86cd799439011"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserCacheKey(tt.userID))
		})
	}
}

func TestTokenKeys(t *testing.T) {
	assert.Equal(t, "password_reset:a@example.com", PasswordResetKey("a@example.com"))
	assert.Equal(t, "oauth_state:xyz", OAuthStateKey("xyz"))
}

func TestNewRedis(t *testing.T) {
	t.Run("connects to a running server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		r, err := NewRedis(mr.Addr())

		require.NoError(t, err)
		assert.NoError(t, r.Ping(context.Background()))
		assert.NoError(t, r.Close())
	})

	t.Run("fails when nothing listens", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		r, err := NewRedis(addr)

		assert.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRedis_SetGetDelete(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("round trips JSON values", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))

		var got payload
		found, err := r.Get(ctx, "k", &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload{Name: "a", Count: 2}, got)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		var got payload
		found, err := r.Get(ctx, "missing", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "short", payload{Name: "x"}, time.Second))
		mr.FastForward(2 * time.Second)

		var got payload
		found, err := r.Get(ctx, "short", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("undecodable value is an error", func(t *testing.T) {
		require.NoError(t, mr.Set("raw", "not-json"))

		var got payload
		found, err := r.Get(ctx, "raw", &got)

		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("delete removes key", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "gone", payload{}, time.Minute))
		require.NoError(t, r.Delete(ctx, "gone"))

		assert.False(t, mr.Exists("gone"))
	})

	t.Run("delete removes several keys at once", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "a", payload{}, time.Minute))
		require.NoError(t, r.Set(ctx, "b", payload{}, time.Minute))

		require.NoError(t, r.Delete(ctx, "a", "b", "never-set"))
		require.NoError(t, r.Delete(ctx))

		assert.False(t, mr.Exists("a"))
		assert.False(t, mr.Exists("b"))
	})
}
