//go:build api

package testdb

import (
	"context"
	"time"

	"teamhub/internal/cache"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer is a throwaway Redis reached through the application cache.
type RedisContainer struct {
	Container testcontainers.Container
	URI       string
	Cache     *cache.Redis
}

// SetupRedis starts redis:7-alpine and connects with cache.NewRedis, the
// same way the server does from REDIS_URI.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	uri, err := container.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	redisCache, err := cache.NewRedis(uri)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &RedisContainer{Container: container, URI: uri, Cache: redisCache}, nil
}

// Cleanup closes the connection and terminates the container.
func (rc *RedisContainer) Cleanup(ctx context.Context) error {
	if rc.Cache != nil {
		_ = rc.Cache.Close()
	}
	if rc.Container != nil {
		return rc.Container.Terminate(ctx)
	}
	return nil
}

// FlushDB drops every key: cached users, reset tokens and OAuth states.
func (rc *RedisContainer) FlushDB(ctx context.Context) error {
	return rc.Cache.Client().FlushDB(ctx).Err()
}
