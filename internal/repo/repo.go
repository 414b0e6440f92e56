package repo

import (
	"context"
	"errors"

	"studioboard/internal/domain"
)

var (
	// ErrNotFound means the id does not resolve to a record in the store
	// that was asked.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the durable store could not be reached. The
	// service layer decides whether that becomes a degraded-mode retry
	// or a 503.
	ErrUnavailable = errors.New("database unavailable")
)

// Collection is the per-entity store contract. Both the durable SurrealDB
// implementation and the in-memory degraded-mode implementation satisfy
// it, so the dual-path policy in the service layer is an explicit choice
// between two values of the same type rather than a catch-and-fallback.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id string, v T) (T, error)
	// Delete returns the removed record so callers can audit its
	// display name.
	Delete(ctx context.Context, id string) (T, error)
}

// SettingsStore holds the singleton settings document, upsert-keyed.
type SettingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Put(ctx context.Context, s domain.Settings) (domain.Settings, error)
}

// ActivityStore appends and reads audit trail entries.
type ActivityStore interface {
	Append(ctx context.Context, a domain.Activity) (domain.Activity, error)
	// Recent returns up to n entries, newest first.
	Recent(ctx context.Context, n int) ([]domain.Activity, error)
}
