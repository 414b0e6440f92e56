package app

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"studioboard/internal/config"
	"studioboard/internal/repo"
)

type App struct {
	cfg    config.Config
	conn   *repo.Conn
	router *gin.Engine
	log    zerolog.Logger
}

// New wires the application. The database handle is lazy: nothing is
// dialed here, so the server comes up even when the store is down and
// degraded mode (outside production) takes over per request.
func New(cfg config.Config, log zerolog.Logger) *App {
	a := &App{
		cfg:  cfg,
		conn: repo.NewConn(cfg.DB),
		log:  log,
	}
	a.router = newRouter(cfg, a.conn, log)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	return a.conn.Close(ctx)
}

func newRouter(cfg config.Config, conn *repo.Conn, log zerolog.Logger) *gin.Engine {
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, conn, log)
	return r
}
