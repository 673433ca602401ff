package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"venuebook/internal/infra/config"
	"venuebook/internal/infra/obs"
)

type VenueHTTP interface {
	Search(c *gin.Context)
	Get(c *gin.Context)
}

type BookingHTTP interface {
	Create(c *gin.Context)
	UpdateGuests(c *gin.Context)
	Cancel(c *gin.Context)
}

type ProfileHTTP interface {
	Dashboard(c *gin.Context)
	ManagerOverview(c *gin.Context)
}

type ManagerHTTP interface {
	DeleteVenue(c *gin.Context)
}

type Handlers struct {
	Venue   VenueHTTP
	Booking BookingHTTP
	Profile ProfileHTTP
	Manager ManagerHTTP
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
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"Idempotency-Key", "X-Profile-Name", "X-Profile-Email", "X-Venue-Manager",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))
	router.Use(SessionMiddleware())

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Venue != nil {
		api.GET("/venues", h.Venue.Search)
		api.GET("/venues/:id", h.Venue.Get)
	}
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
		api.PATCH("/bookings/:id/guests", h.Booking.UpdateGuests)
		api.DELETE("/bookings/:id", h.Booking.Cancel)
	}
	if h.Profile != nil {
		meGroup := api.Group("/me")
		meGroup.GET("/dashboard", h.Profile.Dashboard)
		meGroup.GET("/manager", h.Profile.ManagerOverview)
	}
	if h.Manager != nil {
		api.DELETE("/manager/venues/:id", h.Manager.DeleteVenue)
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
