// Package transfer copies dashboard collections between two databases,
// typically a local development instance and the hosted production one.
// The copy is additive and idempotent: records already present in the
// target are left untouched, so a rerun converges to all-skipped.
package transfer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Doc is one record detached from its table: the key plus every other
// field of the document.
type Doc struct {
	Key    string
	Fields map[string]any
}

// Store is one side of a copy.
type Store interface {
	// DatabaseName reports the database the session is actually using,
	// as the server sees it.
	DatabaseName(ctx context.Context) (string, error)
	ReadAll(ctx context.Context, table string) ([]Doc, error)
	Has(ctx context.Context, table, key string) (bool, error)
	Insert(ctx context.Context, table string, d Doc) error
}

// Counts summarizes one table's copy.
type Counts struct {
	Found    int `json:"found"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
}

type Options struct {
	// SourceURI and TargetURI are the endpoints the two sessions were
	// dialed against. They must differ: two sessions to the same server
	// both report the expected database name, so the name check alone
	// cannot catch a copy of a database into itself.
	SourceURI string
	TargetURI string

	// SourceName and TargetName are the database names both sessions
	// must report before anything is written. A mismatch aborts the
	// whole run; this is the guard against copying into the wrong
	// environment.
	SourceName string
	TargetName string

	Collections []string
}

// CheckEndpoints refuses a copy between identical endpoints. Callers
// that dial the sessions themselves should also run this before
// dialing, so nothing connects when the run is doomed anyway.
func CheckEndpoints(source, target string) error {
	if source != "" && source == target {
		return fmt.Errorf("source and target are the same endpoint %q", source)
	}
	return nil
}

// DefaultCollections is every table the dashboard persists.
func DefaultCollections() []string {
	return []string{
		"tasks",
		"assets",
		"expenses",
		"milestones",
		"ideas",
		"competitors",
		"activities",
		"settings",
	}
}

// Run copies every requested collection from src to dst. Both name
// preconditions are verified before the first write; after that, each
// record is inserted only when the target has no record under its key.
func Run(ctx context.Context, src, dst Store, opts Options, log zerolog.Logger) (map[string]Counts, error) {
	if err := CheckEndpoints(opts.SourceURI, opts.TargetURI); err != nil {
		return nil, err
	}
	if err := checkName(ctx, src, "source", opts.SourceName); err != nil {
		return nil, err
	}
	if err := checkName(ctx, dst, "target", opts.TargetName); err != nil {
		return nil, err
	}

	tables := opts.Collections
	if len(tables) == 0 {
		tables = DefaultCollections()
	}

	out := make(map[string]Counts, len(tables))
	for _, table := range tables {
		c, err := copyTable(ctx, src, dst, table)
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", table, err)
		}
		log.Info().Str("table", table).
			Int("found", c.Found).Int("upserted", c.Upserted).Int("skipped", c.Skipped).
			Msg("table copied")
		out[table] = c
	}
	return out, nil
}

func checkName(ctx context.Context, s Store, role, want string) error {
	got, err := s.DatabaseName(ctx)
	if err != nil {
		return fmt.Errorf("%s database name: %w", role, err)
	}
	if got != want {
		return fmt.Errorf("%s session uses database %q, expected %q", role, got, want)
	}
	return nil
}

func copyTable(ctx context.Context, src, dst Store, table string) (Counts, error) {
	var c Counts
	docs, err := src.ReadAll(ctx, table)
	if err != nil {
		return c, fmt.Errorf("read: %w", err)
	}
	c.Found = len(docs)

	for _, d := range docs {
		exists, err := dst.Has(ctx, table, d.Key)
		if err != nil {
			return c, fmt.Errorf("check %s: %w", d.Key, err)
		}
		if exists {
			c.Skipped++
			continue
		}
		if err := dst.Insert(ctx, table, d); err != nil {
			return c, fmt.Errorf("insert %s: %w", d.Key, err)
		}
		c.Upserted++
	}
	return c, nil
}
