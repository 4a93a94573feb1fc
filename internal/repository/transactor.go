package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs fn inside a database transaction. Repository calls made
// with the context handed to fn join the transaction. fn may be invoked more
// than once on transient errors, so it must not perform external side effects.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// mongoTransactor implements Transactor with MongoDB multi-document transactions.
// It requires a replica set or sharded cluster.
type mongoTransactor struct {
	client *mongo.Client
}

// NewTransactor creates a Transactor backed by client sessions.
func NewTransactor(client *mongo.Client) Transactor {
	return &mongoTransactor{client: client}
}

// WithTransaction runs fn in a session-bound transaction and commits it when
// fn returns nil.
func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(txCtx mongo.SessionContext) (interface{}, error) {
			return nil, fn(txCtx)
		})
		return err
	})
}
