package repo

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"studioboard/internal/domain"
)

// settingsKey is the fixed identifier of the singleton settings
// document. Upserting on it is what enforces "exactly one".
const settingsKey = "app"

// SurrealSettings stores the singleton settings document at settings:app.
type SurrealSettings struct {
	conn *Conn
}

func Settings(conn *Conn) *SurrealSettings {
	return &SurrealSettings{conn: conn}
}

func (s *SurrealSettings) Get(ctx context.Context) (domain.Settings, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	rec, err := surrealdb.Select[settingsRecord](ctx, db, models.NewRecordID("settings", settingsKey))
	if err != nil {
		return domain.Settings{}, unavailable("select %s", "settings:"+settingsKey, err)
	}
	if rec == nil || rec.ID == nil {
		// Nothing saved yet; the dashboard still needs numbers to render.
		return domain.DefaultSettings(), nil
	}
	return domain.Settings{
		TotalBudget:       rec.TotalBudget,
		LaunchDate:        rec.LaunchDate,
		RevenuePerStudent: rec.RevenuePerStudent,
	}, nil
}

func (s *SurrealSettings) Put(ctx context.Context, v domain.Settings) (domain.Settings, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	rec := settingsRecord{
		TotalBudget:       v.TotalBudget,
		LaunchDate:        v.LaunchDate,
		RevenuePerStudent: v.RevenuePerStudent,
	}
	if _, err := surrealdb.Upsert[settingsRecord](ctx, db, models.NewRecordID("settings", settingsKey), rec); err != nil {
		return domain.Settings{}, unavailable("upsert %s", "settings:"+settingsKey, err)
	}
	return v, nil
}
