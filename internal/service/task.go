package service

import (
	"context"

	"github.com/rs/zerolog"

	"studioboard/internal/domain"
	"studioboard/internal/repo"
)

// MigrateFunc runs the label migration against the durable store.
type MigrateFunc func(ctx context.Context) (repo.MigrationResult, error)

// Tasks layers task-specific behavior over the generic resource:
// read-time label normalization and the on-demand label migration.
// Update classification (UPDATE vs COMPLETE) is wired in through the
// resource's action function.
type Tasks struct {
	*Resource[domain.Task]
	migrate MigrateFunc
}

func NewTasks(durable, fallback repo.Collection[domain.Task], audit *ActivityLogger, migrate MigrateFunc, log zerolog.Logger) *Tasks {
	res := NewResource(
		"Task", durable, fallback, audit,
		func(t domain.Task) string { return t.Title },
		domain.ClassifyTaskUpdate,
		log,
	)
	return &Tasks{Resource: res, migrate: migrate}
}

// List normalizes legacy status/priority labels in memory so documents
// that pre-date the migration display correctly. Nothing is persisted.
func (s *Tasks) List(ctx context.Context) ([]domain.Task, error) {
	list, err := s.Resource.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = domain.NormalizeTask(list[i])
	}
	return list, nil
}

// Migrate rewrites legacy labels in the durable store. Unlike reads this
// never falls back: the caller asked for a write, so an unreachable
// store is an error, not a degraded success.
func (s *Tasks) Migrate(ctx context.Context) (repo.MigrationResult, error) {
	return s.migrate(ctx)
}
