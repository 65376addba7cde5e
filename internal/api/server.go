package api

import (
	"fmt"
	"net/http"

	"triptix/internal/config"
	"triptix/internal/handlers"
	"triptix/internal/logger"
	"triptix/internal/messaging"
	"triptix/internal/middleware"
	"triptix/internal/random"
	"triptix/internal/repository"
	"triptix/internal/service"
	"triptix/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the HTTP surface over the booking core.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	store    store.Store
	nats     *messaging.NATSClient
	services *service.Services
	repos    *repository.Repositories
}

// NewServer connects the store and broker and builds the router.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	repos := repository.NewRepositories(st)
	services := service.NewServices(repos, natsClient, random.New(), cfg)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		store:    st,
		nats:     natsClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server, nil
}

// NewServerWithServices builds a router over pre-wired services. Used
// by tests to inject a seeded random source and a memory store.
func NewServerWithServices(cfg *config.Config, services *service.Services) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
	}
	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	api := s.router.Group("/api")
	{
		api.POST("/search", h.Search)

		seatmap := api.Group("/seatmap")
		{
			seatmap.POST("/open", h.OpenSeatMap)
			seatmap.PATCH("/toggle", h.ToggleSeat)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/confirm", h.ConfirmBooking)
			bookings.GET("", h.ListBookings)
			bookings.PATCH("/cancel", h.CancelBooking)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", h.Me)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "triptix-api",
		"version": "1.0.0",
	})
}

// GetRouter returns the router, mainly for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the broker and store connections.
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logger.Get().Error("Error closing store", "error", err)
			return err
		}
	}

	return nil
}
