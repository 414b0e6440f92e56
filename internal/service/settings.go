package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"studioboard/internal/domain"
	"studioboard/internal/repo"
)

// Settings manages the singleton budget document with the same dual-path
// policy as the entity resources.
type Settings struct {
	durable  repo.SettingsStore
	fallback repo.SettingsStore // nil in production
	audit    *ActivityLogger
	log      zerolog.Logger
}

func NewSettings(durable, fallback repo.SettingsStore, audit *ActivityLogger, log zerolog.Logger) *Settings {
	return &Settings{durable: durable, fallback: fallback, audit: audit, log: log}
}

func (s *Settings) Get(ctx context.Context) (domain.Settings, error) {
	v, err := s.durable.Get(ctx)
	if err == nil {
		return v, nil
	}
	if s.fallback == nil {
		s.log.Warn().Err(err).Msg("durable store unreachable, returning default settings")
		return domain.DefaultSettings(), nil
	}
	return s.fallback.Get(ctx)
}

// Patch applies a partial update from a loose payload. Only the three
// known fields are considered and only when carrying the right type;
// anything else is silently ignored rather than rejected.
func (s *Settings) Patch(ctx context.Context, fields map[string]any) (domain.Settings, error) {
	store := s.durable
	current, err := store.Get(ctx)
	if s.fallback != nil && errors.Is(err, repo.ErrUnavailable) {
		store = s.fallback
		current, err = store.Get(ctx)
	}
	if err != nil {
		return domain.Settings{}, err
	}

	if v, ok := fields["totalBudget"].(float64); ok {
		current.TotalBudget = v
	}
	if v, ok := fields["launchDate"].(string); ok && v != "" {
		current.LaunchDate = v
	}
	if v, ok := fields["revenuePerStudent"].(float64); ok {
		current.RevenuePerStudent = v
	}

	out, err := store.Put(ctx, current)
	if err != nil {
		return domain.Settings{}, err
	}
	s.audit.Log(ctx, domain.ActionUpdate, "Settings", "budget configuration")
	return out, nil
}
