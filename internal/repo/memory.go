package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"studioboard/internal/domain"
)

// Fixture is one seeded degraded-mode record with its legacy key.
type Fixture[T any] struct {
	Key string
	Val T
}

type memItem[T any] struct {
	key    string
	legacy string
	val    T
}

// Memory is the degraded-mode Collection: process-lifetime, seeded from
// fixtures on first access, never persisted and never reconciled back
// into the durable store. It must not be constructed in production.
//
// Seeded records stay addressable by their legacy fixture key even after
// updates; records created here get a synthetic {unix-millis}-{suffix}
// key unique within the process.
type Memory[T any] struct {
	seed   []Fixture[T]
	withID func(T, string) T

	mu     sync.Mutex
	seeded bool
	items  []memItem[T]
}

func NewMemory[T any](seed []Fixture[T], withID func(T, string) T) *Memory[T] {
	return &Memory[T]{seed: seed, withID: withID}
}

// ensure materializes the fixtures exactly once. Callers hold mu.
func (m *Memory[T]) ensure() {
	if m.seeded {
		return
	}
	for _, f := range m.seed {
		m.items = append(m.items, memItem[T]{
			key:    f.Key,
			legacy: f.Key,
			val:    m.withID(f.Val, f.Key),
		})
	}
	m.seeded = true
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	out := make([]T, len(m.items))
	for i, it := range m.items {
		out[i] = it.val
	}
	return out, nil
}

func (m *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	if i := m.index(id); i >= 0 {
		return m.items[i].val, nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T]) Create(ctx context.Context, v T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	key := SyntheticKey()
	val := m.withID(v, key)
	m.items = append(m.items, memItem[T]{key: key, val: val})
	return val, nil
}

func (m *Memory[T]) Update(ctx context.Context, id string, v T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	i := m.index(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	val := m.withID(v, m.items[i].key)
	m.items[i].val = val
	return val, nil
}

func (m *Memory[T]) Delete(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	i := m.index(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	val := m.items[i].val
	m.items = append(m.items[:i], m.items[i+1:]...)
	return val, nil
}

// index matches either the current key or the legacy fixture key.
// Fixture data pre-dates synthetic key assignment, so both are valid
// lookup keys against this store.
func (m *Memory[T]) index(id string) int {
	for i, it := range m.items {
		if it.key == id || (it.legacy != "" && it.legacy == id) {
			return i
		}
	}
	return -1
}

// SyntheticKey builds a degraded-mode record key. The uuid suffix keeps
// keys minted within the same millisecond distinct.
func SyntheticKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// MemorySettings is the degraded-mode singleton settings document.
type MemorySettings struct {
	mu  sync.Mutex
	set bool
	val domain.Settings
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{}
}

func (m *MemorySettings) Get(ctx context.Context) (domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return domain.DefaultSettings(), nil
	}
	return m.val, nil
}

func (m *MemorySettings) Put(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.val = s
	m.set = true
	return s, nil
}
