package transfer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps tables in memory and counts writes.
type fakeStore struct {
	name    string
	tables  map[string]map[string]map[string]any
	inserts int
}

func newFakeStore(name string) *fakeStore {
	return &fakeStore{name: name, tables: map[string]map[string]map[string]any{}}
}

func (s *fakeStore) put(table, key string, fields map[string]any) {
	if s.tables[table] == nil {
		s.tables[table] = map[string]map[string]any{}
	}
	s.tables[table][key] = fields
}

func (s *fakeStore) DatabaseName(ctx context.Context) (string, error) { return s.name, nil }

func (s *fakeStore) ReadAll(ctx context.Context, table string) ([]Doc, error) {
	out := []Doc{}
	for key, fields := range s.tables[table] {
		out = append(out, Doc{Key: key, Fields: fields})
	}
	return out, nil
}

func (s *fakeStore) Has(ctx context.Context, table, key string) (bool, error) {
	_, ok := s.tables[table][key]
	return ok, nil
}

func (s *fakeStore) Insert(ctx context.Context, table string, d Doc) error {
	s.inserts++
	s.put(table, d.Key, d.Fields)
	return nil
}

func seededSource() *fakeStore {
	src := newFakeStore("board")
	src.put("tasks", "t1", map[string]any{"title": "Record intro lesson"})
	src.put("tasks", "t2", map[string]any{"title": "Order acoustic panels"})
	src.put("settings", "app", map[string]any{"totalBudget": float64(50000)})
	return src
}

func TestRunCopiesMissingRecords(t *testing.T) {
	src := seededSource()
	dst := newFakeStore("board")
	dst.put("tasks", "t1", map[string]any{"title": "already there"})

	counts, err := Run(context.Background(), src, dst, Options{
		SourceName:  "board",
		TargetName:  "board",
		Collections: []string{"tasks", "settings"},
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, Counts{Found: 2, Upserted: 1, Skipped: 1}, counts["tasks"])
	assert.Equal(t, Counts{Found: 1, Upserted: 1, Skipped: 0}, counts["settings"])

	// The pre-existing target record was not overwritten.
	assert.Equal(t, "already there", dst.tables["tasks"]["t1"]["title"])
	assert.Equal(t, "Order acoustic panels", dst.tables["tasks"]["t2"]["title"])
}

func TestRunSecondPassConverges(t *testing.T) {
	src := seededSource()
	dst := newFakeStore("board")
	opts := Options{SourceName: "board", TargetName: "board", Collections: []string{"tasks", "settings"}}

	_, err := Run(context.Background(), src, dst, opts, zerolog.Nop())
	require.NoError(t, err)
	firstInserts := dst.inserts

	counts, err := Run(context.Background(), src, dst, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, firstInserts, dst.inserts, "rerun writes nothing")
	for table, c := range counts {
		assert.Equal(t, c.Found, c.Skipped, "table %s", table)
		assert.Zero(t, c.Upserted, "table %s", table)
	}
}

func TestRunAbortsOnIdenticalEndpoints(t *testing.T) {
	// Both sessions point at the same database: the name checks pass on
	// both sides, so only the endpoint comparison can stop the run.
	shared := seededSource()

	_, err := Run(context.Background(), shared, shared, Options{
		SourceURI:  "ws://localhost:8000/rpc",
		TargetURI:  "ws://localhost:8000/rpc",
		SourceName: "board",
		TargetName: "board",
	}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same endpoint")
	assert.Zero(t, shared.inserts, "no collection may be touched")
}

func TestCheckEndpoints(t *testing.T) {
	assert.NoError(t, CheckEndpoints("ws://dev:8000/rpc", "wss://prod.example.com/rpc"))
	assert.Error(t, CheckEndpoints("ws://dev:8000/rpc", "ws://dev:8000/rpc"))

	// Unset endpoints skip the check; Run is also used by callers that
	// built their stores without dialing.
	assert.NoError(t, CheckEndpoints("", ""))
}

func TestRunAbortsOnSourceNameMismatch(t *testing.T) {
	src := newFakeStore("scratch")
	dst := newFakeStore("board")

	_, err := Run(context.Background(), src, dst, Options{SourceName: "board", TargetName: "board"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"scratch"`)
	assert.Zero(t, dst.inserts)
}

func TestRunAbortsOnTargetNameMismatchBeforeWriting(t *testing.T) {
	src := seededSource()
	dst := newFakeStore("staging")

	_, err := Run(context.Background(), src, dst, Options{SourceName: "board", TargetName: "board"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
	assert.Zero(t, dst.inserts, "nothing written before the precondition check failed")
}

func TestDefaultCollectionsCoverEveryTable(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"tasks", "assets", "expenses", "milestones",
		"ideas", "competitors", "activities", "settings",
	}, DefaultCollections())
}
