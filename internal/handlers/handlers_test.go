package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioboard/internal/domain"
	"studioboard/internal/handlers"
	"studioboard/internal/repo"
	"studioboard/internal/service"
)

var errDown = fmt.Errorf("%w: connection refused", repo.ErrUnavailable)

type down[T any] struct{}

func (down[T]) List(ctx context.Context) ([]T, error) { return nil, errDown }
func (down[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	return zero, errDown
}
func (down[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	return zero, errDown
}
func (down[T]) Update(ctx context.Context, id string, v T) (T, error) {
	var zero T
	return zero, errDown
}
func (down[T]) Delete(ctx context.Context, id string) (T, error) {
	var zero T
	return zero, errDown
}

type downActivities struct{}

func (downActivities) Append(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return domain.Activity{}, errDown
}
func (downActivities) Recent(ctx context.Context, n int) ([]domain.Activity, error) {
	return nil, errDown
}

type downSettings struct{}

func (downSettings) Get(ctx context.Context) (domain.Settings, error) {
	return domain.Settings{}, errDown
}
func (downSettings) Put(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	return domain.Settings{}, errDown
}

// testEnv is a router wired like the dev deployment: unreachable durable
// stores with fixture-seeded fallbacks behind them.
type testEnv struct {
	router  *gin.Engine
	buffer  *repo.ActivityBuffer
	migrate repo.MigrationResult
	migErr  error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{buffer: repo.NewActivityBuffer()}
	audit := service.NewActivityLogger(downActivities{}, env.buffer, zerolog.Nop())
	migrate := func(ctx context.Context) (repo.MigrationResult, error) {
		return env.migrate, env.migErr
	}

	taskSvc := service.NewTasks(down[domain.Task]{}, repo.MemoryTasks(), audit, migrate, zerolog.Nop())
	assetSvc := service.NewResource[domain.Asset]("Asset", down[domain.Asset]{}, repo.MemoryAssets(), audit,
		func(a domain.Asset) string { return a.Name }, nil, zerolog.Nop())
	settingsSvc := service.NewSettings(downSettings{}, repo.NewMemorySettings(), audit, zerolog.Nop())

	r := gin.New()
	api := r.Group("/api/v1")

	th := handlers.NewTaskHandler(taskSvc)
	api.GET("/tasks", th.List)
	api.POST("/tasks", th.Create)
	api.PUT("/tasks/:id", th.Update)
	api.DELETE("/tasks/:id", th.Delete)

	ah := handlers.NewAssetHandler(assetSvc)
	api.GET("/assets", ah.List)
	api.POST("/assets", ah.Create)

	sh := handlers.NewSettingsHandler(settingsSvc)
	api.GET("/settings", sh.Get)
	api.PUT("/settings", sh.Update)

	api.GET("/activities", handlers.NewActivityHandler(audit).List)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListTasksServesFixtures(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decode[[]domain.Task](t, w)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Record intro lesson", tasks[0].Title)
}

func TestCreateTaskDegraded(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/tasks", `{"title":"Cut launch trailer","priority":"High"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	task := decode[domain.Task](t, w)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.StatusPending, task.Status, "status defaults when omitted")
	assert.Equal(t, domain.PriorityHigh, task.Priority)

	entries := env.buffer.Recent(1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionCreate, entries[0].Action)
	assert.Equal(t, `created Task "Cut launch trailer"`, entries[0].Description)
}

func TestCreateTaskValidation(t *testing.T) {
	env := newTestEnv(t)

	for name, body := range map[string]string{
		"missing title": `{"description":"no title"}`,
		"bad status":    `{"title":"x","status":"Archived"}`,
		"bad priority":  `{"title":"x","priority":"Urgent"}`,
		"not json":      `title=x`,
	} {
		w := env.do(t, http.MethodPost, "/api/v1/tasks", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestUpdateTaskIntoDone(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/tasks/t1", `{"status":"Done"}`)
	require.Equal(t, http.StatusOK, w.Code)

	task := decode[domain.Task](t, w)
	assert.Equal(t, domain.StatusDone, task.Status)
	assert.Equal(t, "Record intro lesson", task.Title, "unset fields untouched")

	entries := env.buffer.Recent(1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionComplete, entries[0].Action)
}

func TestUpdateTaskUnknownID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/tasks/ghost", `{"title":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/v1/tasks/t2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"task deleted"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/v1/tasks", "")
	assert.Len(t, decode[[]domain.Task](t, w), 2)
}

func TestMigrateQueryParam(t *testing.T) {
	env := newTestEnv(t)
	env.migrate = repo.MigrationResult{UpdatedFields: 6, TotalTasks: 11}

	w := env.do(t, http.MethodGet, "/api/v1/tasks?migrate=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updatedFields":6,"totalTasks":11}`, w.Body.String())
}

func TestMigrateFailure(t *testing.T) {
	env := newTestEnv(t)
	env.migErr = errDown

	w := env.do(t, http.MethodGet, "/api/v1/tasks?migrate=1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode[map[string]string](t, w)
	assert.Contains(t, body["error"], "unavailable")
}

func TestActivitiesFeed(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/tasks", `{"title":"one"}`)
	env.do(t, http.MethodPost, "/api/v1/assets", `{"name":"Teleprompter","category":"Production"}`)

	w := env.do(t, http.MethodGet, "/api/v1/activities", "")
	require.Equal(t, http.StatusOK, w.Code)

	feed := decode[[]domain.Activity](t, w)
	require.Len(t, feed, 2)
	assert.Equal(t, "Asset", feed[0].Entity, "newest first")
	assert.Equal(t, "Task", feed[1].Entity)
}

func TestSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DefaultSettings(), decode[domain.Settings](t, w))

	w = env.do(t, http.MethodPut, "/api/v1/settings", `{"totalBudget":90000,"theme":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[domain.Settings](t, w)
	assert.Equal(t, float64(90000), got.TotalBudget)
	assert.Equal(t, domain.DefaultSettings().LaunchDate, got.LaunchDate, "unknown fields ignored, known ones kept")
}

func TestProductionReadsFailSoft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Production wiring: no fallbacks, no buffer.
	audit := service.NewActivityLogger(downActivities{}, nil, zerolog.Nop())
	assetSvc := service.NewResource[domain.Asset]("Asset", down[domain.Asset]{}, nil, audit,
		func(a domain.Asset) string { return a.Name }, nil, zerolog.Nop())

	r := gin.New()
	ah := handlers.NewAssetHandler(assetSvc)
	r.GET("/api/v1/assets", ah.List)
	r.POST("/api/v1/assets", ah.Create)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/assets", strings.NewReader(`{"name":"Mic","category":"Production"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Database unavailable"}`, w.Body.String())
}
