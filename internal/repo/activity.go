package repo

import (
	"context"
	"sync"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"studioboard/internal/domain"
)

// SurrealActivities is the durable audit trail store.
type SurrealActivities struct {
	conn *Conn
}

func Activities(conn *Conn) *SurrealActivities {
	return &SurrealActivities{conn: conn}
}

func (s *SurrealActivities) Append(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	created, err := surrealdb.Create[activityRecord](ctx, db, "activities", encActivity(a))
	if err != nil {
		return domain.Activity{}, unavailable("create %s", "activities", err)
	}
	if created == nil {
		return a, nil
	}
	return decActivity(*created), nil
}

func (s *SurrealActivities) Recent(ctx context.Context, n int) ([]domain.Activity, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}
	res, err := surrealdb.Query[[]activityRecord](ctx, db,
		"SELECT * FROM activities ORDER BY createdAt DESC LIMIT $n",
		map[string]any{"n": n})
	if err != nil {
		return nil, unavailable("query %s", "activities", err)
	}
	out := []domain.Activity{}
	if res != nil && len(*res) > 0 {
		for _, r := range (*res)[0].Result {
			out = append(out, decActivity(r))
		}
	}
	return out, nil
}

// ActivityBufferCap bounds the degraded-mode audit trail.
const ActivityBufferCap = 100

// ActivityBuffer keeps the most recent entries in memory, newest first.
// Appending the 101st entry drops the oldest.
type ActivityBuffer struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func NewActivityBuffer() *ActivityBuffer {
	return &ActivityBuffer{}
}

func (b *ActivityBuffer) Append(a domain.Activity) domain.Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a.ID == "" {
		a.ID = SyntheticKey()
	}
	b.entries = append([]domain.Activity{a}, b.entries...)
	if len(b.entries) > ActivityBufferCap {
		b.entries = b.entries[:ActivityBufferCap]
	}
	return a
}

// Recent returns up to n entries, newest first.
func (b *ActivityBuffer) Recent(n int) []domain.Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]domain.Activity, n)
	copy(out, b.entries[:n])
	return out
}

func (b *ActivityBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
