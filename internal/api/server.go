package api

import (
	"fmt"
	"net/http"

	"placehub/internal/auth"
	"placehub/internal/config"
	"placehub/internal/handlers"
	"placehub/internal/metrics"
	"placehub/internal/middleware"
	"placehub/internal/repository"
	"placehub/internal/service"
	"placehub/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wires the stores, services and router together.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	sessions *auth.Service
	services *service.Services
	repos    *repository.Repositories
}

// NewServer builds a fully wired server instance.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	store, err := storage.New(cfg.DataDir, cfg.ManagersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	repos, err := repository.NewRepositories(store)
	if err != nil {
		return nil, fmt.Errorf("failed to load entity stores: %w", err)
	}

	managers, err := store.LoadManagers()
	if err != nil {
		return nil, fmt.Errorf("failed to load manager roster: %w", err)
	}

	sessions := auth.NewService(managers)
	services := service.NewServices(repos, sessions)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())
	// The browser client may be served from anywhere during development.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", middleware.TokenHeader},
	}))

	server := &Server{
		router:   router,
		config:   cfg,
		sessions: sessions,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server, nil
}

// setupRoutes wires the public and manager API
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)
	requireManager := middleware.RequireManager(s.sessions)

	api := s.router.Group("/api")
	{
		api.GET("/places", h.ListPlaces)
		api.POST("/manager/login", h.Login)
		api.GET("/ratings/summary", h.RatingsSummary)

		places := api.Group("/places/:id")
		{
			places.PUT("/seats", requireManager, h.UpdateSeats)
			places.POST("/bookings", h.CreateBooking)
			places.GET("/bookings", requireManager, h.ListPlaceBookings)
			places.POST("/ratings", h.CreateRating)
			places.GET("/ratings", h.ListPlaceRatings)
		}

		api.PUT("/bookings/:id/status", requireManager, h.UpdateBookingStatus)
		api.GET("/admin/bookings", requireManager, h.ListAllBookings)
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())

	if s.config.StaticDir != "" {
		// Browser client, the role the original frontend directory had.
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.router.NoRoute(gin.WrapH(fs))
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "placehub-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter returns the router, used by main and by tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
