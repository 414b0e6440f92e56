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

// downSettings is a SettingsStore whose store never answers.
type downSettings struct{}

func (downSettings) Get(ctx context.Context) (domain.Settings, error) {
	return domain.Settings{}, errDown
}
func (downSettings) Put(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	return domain.Settings{}, errDown
}

func newSettings(fallback repo.SettingsStore) (*service.Settings, *repo.ActivityBuffer) {
	audit, buf := newBufferedAudit()
	return service.NewSettings(downSettings{}, fallback, audit, zerolog.Nop()), buf
}

func TestSettingsGetDefaultsInProduction(t *testing.T) {
	svc, _ := newSettings(nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsPatchKnownFields(t *testing.T) {
	svc, buf := newSettings(repo.NewMemorySettings())

	got, err := svc.Patch(context.Background(), map[string]any{
		"totalBudget":       float64(80000),
		"launchDate":        "2026-11-01",
		"revenuePerStudent": float64(275),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(80000), got.TotalBudget)
	assert.Equal(t, "2026-11-01", got.LaunchDate)
	assert.Equal(t, float64(275), got.RevenuePerStudent)

	entries := buf.Recent(1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionUpdate, entries[0].Action)
	assert.Equal(t, "Settings", entries[0].Entity)
}

func TestSettingsPatchIgnoresUnknownAndMistyped(t *testing.T) {
	svc, _ := newSettings(repo.NewMemorySettings())

	got, err := svc.Patch(context.Background(), map[string]any{
		"totalBudget": "not a number",
		"launchDate":  "",
		"theme":       "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got, "nothing valid to apply")
}

func TestSettingsPatchIsSparse(t *testing.T) {
	mem := repo.NewMemorySettings()
	svc, _ := newSettings(mem)

	_, err := svc.Patch(context.Background(), map[string]any{"totalBudget": float64(60000)})
	require.NoError(t, err)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(60000), got.TotalBudget)
	assert.Equal(t, domain.DefaultSettings().LaunchDate, got.LaunchDate)
	assert.Equal(t, domain.DefaultSettings().RevenuePerStudent, got.RevenuePerStudent)
}

func TestSettingsPatchFailsLoudInProduction(t *testing.T) {
	svc, buf := newSettings(nil)

	_, err := svc.Patch(context.Background(), map[string]any{"totalBudget": float64(1)})
	assert.ErrorIs(t, err, repo.ErrUnavailable)
	assert.Zero(t, buf.Len())
}
