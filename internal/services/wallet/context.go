package wallet

import (
	"context"

	"custodia/internal/models"
)

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor returns a context carrying the authenticated caller.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext resolves the authenticated caller from the context.
// Operations that need an actor fail with ErrNoActor when none is present.
func ActorFromContext(ctx context.Context) (models.Actor, error) {
	actor, ok := ctx.Value(actorContextKey).(models.Actor)
	if !ok || actor.CustomerID == 0 {
		return models.Actor{}, ErrNoActor
	}
	return actor, nil
}
