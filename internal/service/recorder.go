package service

import (
	"context"

	"teamhub/internal/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recorder receives business events, typically *metrics.Metrics.
type Recorder interface {
	RecordTeamEvent(event string)
	RecordAuthEvent(event, provider string)
}

type noopRecorder struct{}

func (noopRecorder) RecordTeamEvent(string)         {}
func (noopRecorder) RecordAuthEvent(string, string) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

// forgetUsers drops cached user documents. Call it after the write commits.
func forgetUsers(ctx context.Context, c cache.Cache, ids ...primitive.ObjectID) {
	if c == nil {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cache.UserCacheKey(id.Hex()))
	}
	_ = c.Delete(ctx, keys...)
}
