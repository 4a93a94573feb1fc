package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenData is a single-use secret kept in Redis. Only the hash of the secret
// is stored.
type TokenData struct {
	Subject   string    `json:"subject"`
	TokenHash string    `json:"token_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenStore keeps single-use tokens such as password reset links and OAuth
// state values.
type TokenStore interface {
	// Put stores token data under key, replacing any previous token.
	Put(ctx context.Context, key string, data *TokenData, ttl time.Duration) error
	// Get retrieves token data, or nil when absent or expired.
	Get(ctx context.Context, key string) (*TokenData, error)
	// Consume deletes the token under key if its hash equals tokenHash and
	// reports whether it did.
	Consume(ctx context.Context, key, tokenHash string) (bool, error)
	// Delete removes a token.
	Delete(ctx context.Context, key string) error
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type tokenStore struct {
	cache  Cache
	client *redis.Client
}

// NewTokenStore creates a new TokenStore.
// When cache implements RedisClientProvider (e.g. *Redis) Consume is atomic.
func NewTokenStore(cache Cache) TokenStore {
	store := &tokenStore{cache: cache}
	if provider, ok := cache.(RedisClientProvider); ok {
		store.client = provider.Client()
	}
	return store
}

// HashToken returns the hex sha256 of a token as stored by TokenStore.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Put stores token data under key.
func (s *tokenStore) Put(ctx context.Context, key string, data *TokenData, ttl time.Duration) error {
	return s.cache.Set(ctx, key, data, ttl)
}

// Get retrieves token data by key.
func (s *tokenStore) Get(ctx context.Context, key string) (*TokenData, error) {
	var data TokenData
	found, err := s.cache.Get(ctx, key, &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &data, nil
}

// consumeScript deletes KEYS[1] only when its stored hash equals ARGV[1].
var consumeScript = redis.NewScript(`
local data = redis.call('GET', KEYS[1])
if not data then
    return 0
end

local decoded = cjson.decode(data)
if decoded.token_hash ~= ARGV[1] then
    return 0
end

redis.call('DEL', KEYS[1])
return 1
`)

// Consume deletes the token when tokenHash matches. Two concurrent callers
// presenting the same token cannot both succeed.
func (s *tokenStore) Consume(ctx context.Context, key, tokenHash string) (bool, error) {
	if s.client != nil {
		n, err := consumeScript.Run(ctx, s.client, []string{key}, tokenHash).Int()
		if err != nil {
			return false, fmt.Errorf("consume script failed: %w", err)
		}
		return n == 1, nil
	}

	// Fallback for non-Redis clients (e.g., mocks in tests)
	return s.consumeFallback(ctx, key, tokenHash)
}

func (s *tokenStore) consumeFallback(ctx context.Context, key, tokenHash string) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil || data.TokenHash != tokenHash {
		return false, nil
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a token.
func (s *tokenStore) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}
