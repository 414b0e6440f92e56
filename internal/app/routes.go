package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"studioboard/internal/config"
	"studioboard/internal/domain"
	"studioboard/internal/handlers"
	"studioboard/internal/repo"
	"studioboard/internal/service"
)

// Setup registers all routes on the given engine. Outside production
// every resource also gets a fixture-seeded in-memory fallback and the
// audit trail gets its capped buffer; in production those stay nil and
// the dual-path policy degrades to fail-soft reads and fail-loud writes.
func Setup(r *gin.Engine, cfg config.Config, conn *repo.Conn, log zerolog.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	prod := cfg.App.IsProd()

	var buffer *repo.ActivityBuffer
	if !prod {
		buffer = repo.NewActivityBuffer()
	}
	audit := service.NewActivityLogger(repo.Activities(conn), buffer, log)

	var (
		taskMem       repo.Collection[domain.Task]
		assetMem      repo.Collection[domain.Asset]
		expenseMem    repo.Collection[domain.Expense]
		milestoneMem  repo.Collection[domain.Milestone]
		ideaMem       repo.Collection[domain.Idea]
		competitorMem repo.Collection[domain.Competitor]
		settingsMem   repo.SettingsStore
	)
	if !prod {
		taskMem = repo.MemoryTasks()
		assetMem = repo.MemoryAssets()
		expenseMem = repo.MemoryExpenses()
		milestoneMem = repo.MemoryMilestones()
		ideaMem = repo.MemoryIdeas()
		competitorMem = repo.MemoryCompetitors()
		settingsMem = repo.NewMemorySettings()
	}

	migrate := func(ctx context.Context) (repo.MigrationResult, error) {
		return repo.MigrateLabels(ctx, conn)
	}

	taskSvc := service.NewTasks(repo.Tasks(conn), taskMem, audit, migrate, log)
	assetSvc := service.NewResource("Asset", repo.Assets(conn), assetMem, audit,
		func(a domain.Asset) string { return a.Name }, nil, log)
	expenseSvc := service.NewResource("Expense", repo.Expenses(conn), expenseMem, audit,
		func(e domain.Expense) string { return e.Name }, nil, log)
	milestoneSvc := service.NewResource("Milestone", repo.Milestones(conn), milestoneMem, audit,
		func(m domain.Milestone) string { return m.Phase }, nil, log)
	ideaSvc := service.NewResource("Idea", repo.Ideas(conn), ideaMem, audit,
		func(i domain.Idea) string { return i.Title }, nil, log)
	competitorSvc := service.NewResource("Competitor", repo.Competitors(conn), competitorMem, audit,
		func(c domain.Competitor) string { return c.Name }, nil, log)
	settingsSvc := service.NewSettings(repo.Settings(conn), settingsMem, audit, log)

	api := r.Group("/api/v1")
	registerResourceRoutes(api, "/tasks", handlers.NewTaskHandler(taskSvc))
	registerResourceRoutes(api, "/assets", handlers.NewAssetHandler(assetSvc))
	registerResourceRoutes(api, "/expenses", handlers.NewExpenseHandler(expenseSvc))
	registerResourceRoutes(api, "/milestones", handlers.NewMilestoneHandler(milestoneSvc))
	registerResourceRoutes(api, "/ideas", handlers.NewIdeaHandler(ideaSvc))
	registerResourceRoutes(api, "/competitors", handlers.NewCompetitorHandler(competitorSvc))

	settingsHandler := handlers.NewSettingsHandler(settingsSvc)
	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", settingsHandler.Update)

	api.GET("/activities", handlers.NewActivityHandler(audit).List)
}

// crudHandler is the route shape shared by every entity handler.
type crudHandler interface {
	List(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func registerResourceRoutes(api *gin.RouterGroup, path string, h crudHandler) {
	api.GET(path, h.List)
	api.POST(path, h.Create)
	api.PUT(path+"/:id", h.Update)
	api.DELETE(path+"/:id", h.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Studio Board API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
