package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"studioboard/internal/domain"
	"studioboard/internal/repo"
)

// Resource applies the dual-path persistence policy for one entity type:
// try the durable store; on ErrUnavailable and outside production retry
// against the in-memory store. In production there is no fallback —
// reads fail soft to empty, writes fail loud — so an outage is never
// masked by fabricated success.
type Resource[T any] struct {
	entity   string
	durable  repo.Collection[T]
	fallback repo.Collection[T] // nil in production
	audit    *ActivityLogger
	display  func(T) string
	action   func(old, next T) domain.Action // nil means always UPDATE
	log      zerolog.Logger
}

func NewResource[T any](
	entity string,
	durable repo.Collection[T],
	fallback repo.Collection[T],
	audit *ActivityLogger,
	display func(T) string,
	action func(old, next T) domain.Action,
	log zerolog.Logger,
) *Resource[T] {
	return &Resource[T]{
		entity:   entity,
		durable:  durable,
		fallback: fallback,
		audit:    audit,
		display:  display,
		action:   action,
		log:      log,
	}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	list, err := r.durable.List(ctx)
	if err == nil {
		return list, nil
	}
	if r.fallback == nil {
		r.log.Warn().Err(err).Str("entity", r.entity).Msg("durable store unreachable, returning empty list")
		return []T{}, nil
	}
	r.log.Warn().Err(err).Str("entity", r.entity).Msg("durable store unreachable, serving degraded data")
	return r.fallback.List(ctx)
}

func (r *Resource[T]) Create(ctx context.Context, v T) (T, error) {
	out, err := r.durable.Create(ctx, v)
	if err == nil {
		r.audit.Log(ctx, domain.ActionCreate, r.entity, r.display(out))
		return out, nil
	}
	if r.fallback != nil && errors.Is(err, repo.ErrUnavailable) {
		r.log.Warn().Err(err).Str("entity", r.entity).Msg("durable store unreachable, degraded-mode create")
		out, ferr := r.fallback.Create(ctx, v)
		if ferr != nil {
			var zero T
			return zero, ferr
		}
		r.audit.Log(ctx, domain.ActionCreate, r.entity, r.display(out))
		return out, nil
	}
	var zero T
	return zero, err
}

// Update looks the record up, applies the caller's merge over the old
// snapshot and writes the result back to whichever store held it. The
// audit action is derived from old and new snapshots.
func (r *Resource[T]) Update(ctx context.Context, id string, apply func(T) (T, error)) (T, error) {
	var zero T
	store := r.durable
	old, err := store.Get(ctx, id)
	if r.fallback != nil && errors.Is(err, repo.ErrUnavailable) {
		store = r.fallback
		old, err = store.Get(ctx, id)
	}
	if err != nil {
		return zero, err
	}
	next, err := apply(old)
	if err != nil {
		return zero, err
	}
	out, err := store.Update(ctx, id, next)
	if err != nil {
		return zero, err
	}
	act := domain.ActionUpdate
	if r.action != nil {
		act = r.action(old, out)
	}
	r.audit.Log(ctx, act, r.entity, r.display(out))
	return out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	removed, err := r.durable.Delete(ctx, id)
	if r.fallback != nil && errors.Is(err, repo.ErrUnavailable) {
		removed, err = r.fallback.Delete(ctx, id)
	}
	if err != nil {
		return err
	}
	r.audit.Log(ctx, domain.ActionDelete, r.entity, r.display(removed))
	return nil
}
