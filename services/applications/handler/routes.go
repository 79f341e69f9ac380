package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yuanzh/recruit-portal/internal/pkg/database"
	"github.com/yuanzh/recruit-portal/internal/pkg/middleware"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	httpHandler "github.com/yuanzh/recruit-portal/services/applications/handler/http"
)

// Handler wires the HTTP handlers onto the router
type Handler struct {
	appHandler   *httpHandler.ApplicationHandler
	adminHandler *httpHandler.AdminHandler
	redisClient  *database.RedisClient
	cfg          *models.Config
}

// NewHandler creates and initializes the route handler
func NewHandler(
	appHandler *httpHandler.ApplicationHandler,
	adminHandler *httpHandler.AdminHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		appHandler:   appHandler,
		adminHandler: adminHandler,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)

	api := e.Group("/api")

	// Public applicant endpoints. Code requests are rate limited per IP to
	// keep the SMS gateway from being farmed.
	smsLimiter := middleware.IPRateLimiter(
		h.cfg.SMS.RateLimit,
		time.Duration(h.cfg.SMS.RateLimitSecs)*time.Second,
		h.redisClient.Client,
	)
	api.POST("/sms/send", h.appHandler.RequestCode, smsLimiter)
	api.POST("/applications", h.appHandler.SubmitApplication)
	api.POST("/applications/lookup", h.appHandler.LookupStatus)
	api.GET("/stats", h.appHandler.GetStats)

	// Staff endpoints
	admin := api.Group("/admin", middleware.RequireAPIKey(h.cfg.Admin.APIKey))
	admin.GET("/applications", h.adminHandler.ListApplications)
	admin.GET("/applications/:id", h.adminHandler.GetApplication)
	admin.PUT("/applications/:id/status", h.adminHandler.UpdateStatus)
}

// health reports liveness
func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}
