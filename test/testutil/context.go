package testutil

import (
	"context"
	"time"
)

// TestContext creates a context with timeout for direct database access in tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
