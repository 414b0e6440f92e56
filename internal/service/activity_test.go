package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioboard/internal/domain"
	"studioboard/internal/repo"
	"studioboard/internal/service"
)

// okActivities records appends in memory and serves them newest first.
type okActivities struct {
	entries []domain.Activity
}

func (s *okActivities) Append(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	s.entries = append([]domain.Activity{a}, s.entries...)
	return a, nil
}

func (s *okActivities) Recent(ctx context.Context, n int) ([]domain.Activity, error) {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	return s.entries[:n], nil
}

func TestLoggerPrefersDurableStore(t *testing.T) {
	store := &okActivities{}
	buf := repo.NewActivityBuffer()
	l := service.NewActivityLogger(store, buf, zerolog.Nop())

	l.Log(context.Background(), domain.ActionCreate, "Idea", "Bundle discount")

	require.Len(t, store.entries, 1)
	assert.Zero(t, buf.Len(), "buffer is only for failed appends")

	got := l.Recent(context.Background(), 5)
	require.Len(t, got, 1)
	assert.Equal(t, `created Idea "Bundle discount"`, got[0].Description)
}

func TestLoggerBuffersWhenStoreDown(t *testing.T) {
	buf := repo.NewActivityBuffer()
	l := service.NewActivityLogger(downActivities{}, buf, zerolog.Nop())

	l.Log(context.Background(), domain.ActionDelete, "Asset", "Standing desk")

	assert.Equal(t, 1, buf.Len())
	got := l.Recent(context.Background(), 5)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ActionDelete, got[0].Action)
}

func TestLoggerSilentInProduction(t *testing.T) {
	// No buffer: the entry is lost, the caller never notices.
	l := service.NewActivityLogger(downActivities{}, nil, zerolog.Nop())

	l.Log(context.Background(), domain.ActionUpdate, "Task", "whatever")
	assert.Empty(t, l.Recent(context.Background(), 5))
}

func TestLoggerRecentLimit(t *testing.T) {
	store := &okActivities{}
	l := service.NewActivityLogger(store, nil, zerolog.Nop())
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		l.Log(context.Background(), domain.ActionCreate, "Task", name)
	}

	got := l.Recent(context.Background(), 5)
	require.Len(t, got, 5)
	assert.Equal(t, `created Task "g"`, got[0].Description)
}
