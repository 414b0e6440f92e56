package transfer

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealStore adapts one SurrealDB session to the Store interface.
type SurrealStore struct {
	db *surrealdb.DB
}

// Dial opens an independent session. Source and target must never share
// a session: DatabaseName is the safety check and it inspects the
// session itself.
func Dial(ctx context.Context, endpoint, ns, dbName, user, pass string) (*SurrealStore, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", endpoint, err)
	}
	if user != "" {
		if _, err := db.SignIn(ctx, &surrealdb.Auth{Username: user, Password: pass}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("signin: %w", err)
		}
	}
	if err := db.Use(ctx, ns, dbName); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", ns, dbName, err)
	}
	return &SurrealStore{db: db}, nil
}

func (s *SurrealStore) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

func (s *SurrealStore) DatabaseName(ctx context.Context) (string, error) {
	res, err := surrealdb.Query[string](ctx, s.db, "RETURN session::db()", nil)
	if err != nil {
		return "", err
	}
	if res == nil || len(*res) == 0 {
		return "", fmt.Errorf("no session info returned")
	}
	return (*res)[0].Result, nil
}

func (s *SurrealStore) ReadAll(ctx context.Context, table string) ([]Doc, error) {
	rows, err := surrealdb.Select[[]map[string]any](ctx, s.db, table)
	if err != nil {
		return nil, err
	}
	out := []Doc{}
	if rows == nil {
		return out, nil
	}
	for _, row := range *rows {
		fields := make(map[string]any, len(row))
		for k, v := range row {
			if k == "id" {
				continue
			}
			fields[k] = v
		}
		out = append(out, Doc{Key: docKey(row["id"]), Fields: fields})
	}
	return out, nil
}

func (s *SurrealStore) Has(ctx context.Context, table, key string) (bool, error) {
	rec, err := surrealdb.Select[map[string]any](ctx, s.db, models.NewRecordID(table, key))
	if err != nil {
		return false, err
	}
	return rec != nil && len(*rec) > 0, nil
}

func (s *SurrealStore) Insert(ctx context.Context, table string, d Doc) error {
	_, err := surrealdb.Create[map[string]any](ctx, s.db, models.NewRecordID(table, d.Key), d.Fields)
	return err
}

// docKey flattens whatever the codec decoded the id field into.
func docKey(v any) string {
	switch id := v.(type) {
	case models.RecordID:
		return fmt.Sprint(id.ID)
	case *models.RecordID:
		if id == nil {
			return ""
		}
		return fmt.Sprint(id.ID)
	default:
		return fmt.Sprint(v)
	}
}
