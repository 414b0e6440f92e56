package repo

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioboard/internal/domain"
)

func TestMemorySeedsOnce(t *testing.T) {
	ctx := context.Background()
	m := MemoryTasks()

	first, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Listing again must not re-seed.
	again, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Nor does seeding run again after a delete empties part of the store.
	_, err = m.Delete(ctx, "t1")
	require.NoError(t, err)
	after, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestMemorySeededRecordsCarryFixtureKeys(t *testing.T) {
	ctx := context.Background()
	m := MemoryTasks()

	got, err := m.Get(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "t2", got.ID)
	assert.Equal(t, "Order acoustic panels", got.Title)
}

func TestMemoryLegacyKeyLookupSurvivesUpdate(t *testing.T) {
	ctx := context.Background()
	m := MemoryTasks()

	updated, err := m.Update(ctx, "t1", domain.Task{Title: "Record intro lesson v2", Status: domain.StatusDone})
	require.NoError(t, err)
	assert.Equal(t, "t1", updated.ID)

	// The legacy fixture key still resolves after the update.
	got, err := m.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Record intro lesson v2", got.Title)
}

func TestMemoryCreateAssignsSyntheticKey(t *testing.T) {
	ctx := context.Background()
	m := MemoryIdeas()

	created, err := m.Create(ctx, domain.Idea{Title: "Bundle discount"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{8}$`), created.ID)

	got, err := m.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bundle discount", got.Title)

	other, err := m.Create(ctx, domain.Idea{Title: "Referral program"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestMemoryUnknownKey(t *testing.T) {
	ctx := context.Background()
	m := MemoryAssets()

	_, err := m.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Update(ctx, "nope", domain.Asset{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Delete(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	m := MemoryCompetitors()

	removed, err := m.Delete(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, "DevPath", removed.Name)

	_, err = m.Get(ctx, "c2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyntheticKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		k := SyntheticKey()
		require.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestMemorySettings(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySettings()

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	want := domain.Settings{TotalBudget: 75000, LaunchDate: "2026-10-15", RevenuePerStudent: 300}
	saved, err := m.Put(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	got, err = m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
