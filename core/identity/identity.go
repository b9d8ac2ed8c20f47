package identity

import "context"

// Provider reports the current actor, if any.
type Provider interface {
	// CurrentActorID returns the actor identifier and true when an actor is
	// known. The false branch is an expected outcome, not a failure.
	CurrentActorID(ctx context.Context) (string, bool)
}

type staticProvider struct {
	id string
}

// Static returns a Provider that always reports the given actor id.
// An empty id means "actor unknown".
func Static(id string) Provider {
	return staticProvider{id: id}
}

func (p staticProvider) CurrentActorID(_ context.Context) (string, bool) {
	return p.id, p.id != ""
}

type ctxKey struct{}

// WithActor stores an actor id in the context for FromContext to pick up.
func WithActor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

type contextProvider struct{}

// FromContext returns a Provider backed by WithActor.
func FromContext() Provider {
	return contextProvider{}
}

func (contextProvider) CurrentActorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
