package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayview/internal/infra/config"
	"stayview/internal/infra/obs"
)

type SessionHTTP interface {
	Create(c *gin.Context)
	State(c *gin.Context)
	SetProperty(c *gin.Context)
	SelectDate(c *gin.Context)
	ChangeMonth(c *gin.Context)
	SwitchCurrency(c *gin.Context)
	Calendar(c *gin.Context)
}

type TenantHTTP interface {
	Config(c *gin.Context)
}

type Handlers struct {
	Session SessionHTTP
	Tenant  TenantHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Session != nil {
		api.POST("/sessions", h.Session.Create)
		api.GET("/sessions/:id", h.Session.State)
		api.POST("/sessions/:id/property", h.Session.SetProperty)
		api.POST("/sessions/:id/select", h.Session.SelectDate)
		api.POST("/sessions/:id/month", h.Session.ChangeMonth)
		api.PUT("/sessions/:id/currency", h.Session.SwitchCurrency)
		api.GET("/sessions/:id/calendar", h.Session.Calendar)
	}
	if h.Tenant != nil {
		api.GET("/tenants/:id/config", h.Tenant.Config)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
