package repo

import (
	"context"
	"fmt"
	"sync"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"golang.org/x/sync/singleflight"

	"studioboard/internal/config"
)

// Conn lazily establishes and caches one SurrealDB handle per process.
// Concurrent callers during an in-flight dial share the same attempt
// through singleflight; a failed attempt leaves nothing cached so the
// next caller retries.
type Conn struct {
	cfg config.DBConfig

	sf singleflight.Group
	mu sync.Mutex
	db *surrealdb.DB
}

func NewConn(cfg config.DBConfig) *Conn {
	return &Conn{cfg: cfg}
}

// Get returns the cached handle, dialing on first use. Failures are
// reported as ErrUnavailable.
func (c *Conn) Get(ctx context.Context) (*surrealdb.DB, error) {
	c.mu.Lock()
	db := c.db
	c.mu.Unlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := c.sf.Do("dial", func() (any, error) {
		return c.dial()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v.(*surrealdb.DB), nil
}

func (c *Conn) dial() (*surrealdb.DB, error) {
	timeout := c.cfg.ConnectTimeout.Duration()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := surrealdb.FromEndpointURLString(ctx, c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", c.cfg.Endpoint, err)
	}
	if c.cfg.User != "" {
		if _, err := db.SignIn(ctx, &surrealdb.Auth{
			Username: c.cfg.User,
			Password: c.cfg.Pass,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("signin: %w", err)
		}
	}
	if err := db.Use(ctx, c.cfg.Namespace, c.cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", c.cfg.Namespace, c.cfg.Database, err)
	}

	c.mu.Lock()
	c.db = db
	c.mu.Unlock()
	return db, nil
}

func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	db := c.db
	c.db = nil
	c.mu.Unlock()
	if db == nil {
		return nil
	}
	return db.Close(ctx)
}
