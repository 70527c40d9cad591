package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"namunjari/internal/infra/config"
	"namunjari/internal/infra/obs"
)

type AvailabilityHTTP interface {
	Calendar(c *gin.Context)
}

type ReservationHTTP interface {
	Quote(c *gin.Context)
	Create(c *gin.Context)
}

type AdminHTTP interface {
	Overview(c *gin.Context)
	Confirm(c *gin.Context)
	Delete(c *gin.Context)
}

type Handlers struct {
	Availability AvailabilityHTTP
	Reservation  ReservationHTTP
	Admin        AdminHTTP
	AdminAuth    gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health *obs.Health, h Handlers) *http.Server {
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
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Admin-Password"},
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
	if h.Availability != nil {
		api.GET("/availability/:property", h.Availability.Calendar)
	}
	if h.Reservation != nil {
		api.POST("/quotes/:property", h.Reservation.Quote)
		api.POST("/reservations/:property", h.Reservation.Create)
	}
	if h.Admin != nil {
		adminGroup := api.Group("/admin")
		if h.AdminAuth != nil {
			adminGroup.Use(h.AdminAuth)
		}
		adminGroup.GET("/reservations/:property", h.Admin.Overview)
		adminGroup.POST("/reservations/:property/:id/confirm", h.Admin.Confirm)
		adminGroup.DELETE("/reservations/:property/:id", h.Admin.Delete)
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
