package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/database"
	"github.com/blogicum/blogicum/internal/middleware"
	"github.com/blogicum/blogicum/internal/modules/admin"
	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/blogicum/blogicum/internal/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminPrefix is where the admin JSON API is mounted.
const AdminPrefix = "/admin/api"

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// New initializes the application: config → DB → templates → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := applyRuntimeSettings(cfg, logger); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, cfg.IsDev())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("templates: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.SetHTMLTemplate(tmpl)

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	router.Use(app.adminCORS())
	if err := app.registerRoutes(admin.Default); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return app, nil
}

// adminCORS applies CORS to the admin API only. It is installed on the engine
// rather than the group so that preflight requests, which match no route, get it too.
func (a *App) adminCORS() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
	}
	var patterns []string
	if !a.cfg.IsDev() {
		patterns = a.cfg.AllowedOrigins
	}
	corsConfig.AllowOriginFunc = allowOrigins(patterns)
	handler := cors.New(corsConfig)
	return func(c *gin.Context) {
		if isAdminPath(c.Request.URL.Path) {
			handler(c)
			return
		}
		c.Next()
	}
}

// notFound answers JSON under the admin API and the HTML 404 page elsewhere.
func notFound(c *gin.Context) {
	if isAdminPath(c.Request.URL.Path) {
		response.NotFound(c)
		return
	}
	response.NotFoundPage(c)
}

func methodNotAllowed(c *gin.Context) {
	if isAdminPath(c.Request.URL.Path) {
		response.MethodNotAllowed(c)
		return
	}
	c.AbortWithStatus(http.StatusMethodNotAllowed)
}

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown closes the database pool.
func (a *App) Shutdown() {
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("close database", zap.Error(err))
	}
}
