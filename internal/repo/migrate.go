package repo

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"studioboard/internal/domain"
)

// MigrationResult reports what a label migration run changed.
type MigrationResult struct {
	UpdatedFields int `json:"updatedFields"`
	TotalTasks    int `json:"totalTasks"`
}

// MigrateLabels rewrites legacy task status/priority values to their
// canonical forms in place, one conditional bulk update per mapping, and
// sums the modified counts. Running it again finds nothing left to match,
// so the second run reports zero.
//
// This is a write-intent operation: if the store is unreachable the error
// is returned as-is, never degraded into fixture data.
func MigrateLabels(ctx context.Context, conn *Conn) (MigrationResult, error) {
	db, err := conn.Get(ctx)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("label migration: %w", err)
	}
	return migrateLabels(ctx,
		func(ctx context.Context, field, legacy, canonical string) (int, error) {
			return rewriteField(ctx, db, field, legacy, canonical)
		},
		func(ctx context.Context) (int, error) {
			return countTasks(ctx, db)
		})
}

// migrateLabels drives the six rewrites over whatever executes them.
func migrateLabels(
	ctx context.Context,
	rewrite func(ctx context.Context, field, legacy, canonical string) (int, error),
	count func(ctx context.Context) (int, error),
) (MigrationResult, error) {
	var res MigrationResult
	for field, mapping := range map[string]map[string]string{
		"status":   domain.LegacyStatus,
		"priority": domain.LegacyPriority,
	} {
		for legacy, canonical := range mapping {
			n, err := rewrite(ctx, field, legacy, canonical)
			if err != nil {
				return MigrationResult{}, fmt.Errorf("label migration: %s %q: %w", field, legacy, err)
			}
			res.UpdatedFields += n
		}
	}

	total, err := count(ctx)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("label migration: count: %w", err)
	}
	res.TotalTasks = total
	return res, nil
}

// rewriteField sets field to canonical wherever it currently equals
// legacy, returning the number of modified documents. The field name is
// one of our own constants, never caller input.
func rewriteField(ctx context.Context, db *surrealdb.DB, field, legacy, canonical string) (int, error) {
	stmt := fmt.Sprintf("UPDATE tasks SET %s = $to WHERE %s = $from", field, field)
	res, err := surrealdb.Query[[]taskRecord](ctx, db, stmt, map[string]any{
		"from": legacy,
		"to":   canonical,
	})
	if err != nil {
		return 0, err
	}
	if res == nil || len(*res) == 0 {
		return 0, nil
	}
	return len((*res)[0].Result), nil
}

func countTasks(ctx context.Context, db *surrealdb.DB) (int, error) {
	type row struct {
		Count int `json:"count"`
	}
	res, err := surrealdb.Query[[]row](ctx, db, "SELECT count() AS count FROM tasks GROUP ALL", nil)
	if err != nil {
		return 0, err
	}
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return 0, nil
	}
	return (*res)[0].Result[0].Count, nil
}
