package repo

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// record is implemented by the per-table storage structs in records.go.
type record interface {
	rid() *models.RecordID
}

// Surreal is the durable Collection implementation: one SurrealDB table,
// with converters between the domain type T and its storage record R.
// Driver errors other than "no such record" are reported as
// ErrUnavailable, which is what triggers the degraded path upstream.
type Surreal[T any, R record] struct {
	conn  *Conn
	table string
	enc   func(T) R
	dec   func(R) T
}

func NewSurreal[T any, R record](conn *Conn, table string, enc func(T) R, dec func(R) T) *Surreal[T, R] {
	return &Surreal[T, R]{conn: conn, table: table, enc: enc, dec: dec}
}

func (s *Surreal[T, R]) List(ctx context.Context) ([]T, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := surrealdb.Select[[]R](ctx, db, s.table)
	if err != nil {
		return nil, unavailable("select %s", s.table, err)
	}
	out := []T{}
	if rows != nil {
		for _, r := range *rows {
			out = append(out, s.dec(r))
		}
	}
	return out, nil
}

func (s *Surreal[T, R]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	db, err := s.conn.Get(ctx)
	if err != nil {
		return zero, err
	}
	rec, err := surrealdb.Select[R](ctx, db, models.NewRecordID(s.table, id))
	if err != nil {
		return zero, unavailable("select %s", s.table+":"+id, err)
	}
	// Depending on the CBOR codec a missing record comes back as either
	// a nil pointer or a zero struct without an id.
	if rec == nil || (*rec).rid() == nil {
		return zero, ErrNotFound
	}
	return s.dec(*rec), nil
}

func (s *Surreal[T, R]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	db, err := s.conn.Get(ctx)
	if err != nil {
		return zero, err
	}
	created, err := surrealdb.Create[R](ctx, db, s.table, s.enc(v))
	if err != nil {
		return zero, unavailable("create %s", s.table, err)
	}
	if created == nil {
		return zero, unavailable("create %s", s.table, fmt.Errorf("empty result"))
	}
	return s.dec(*created), nil
}

func (s *Surreal[T, R]) Update(ctx context.Context, id string, v T) (T, error) {
	var zero T
	db, err := s.conn.Get(ctx)
	if err != nil {
		return zero, err
	}
	updated, err := surrealdb.Update[R](ctx, db, models.NewRecordID(s.table, id), s.enc(v))
	if err != nil {
		return zero, unavailable("update %s", s.table+":"+id, err)
	}
	if updated == nil || (*updated).rid() == nil {
		return zero, ErrNotFound
	}
	return s.dec(*updated), nil
}

func (s *Surreal[T, R]) Delete(ctx context.Context, id string) (T, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return existing, err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if _, err := surrealdb.Delete[R](ctx, db, models.NewRecordID(s.table, id)); err != nil {
		var zero T
		return zero, unavailable("delete %s", s.table+":"+id, err)
	}
	return existing, nil
}

func unavailable(format, what string, err error) error {
	return fmt.Errorf("%w: "+format+": %v", ErrUnavailable, what, err)
}
