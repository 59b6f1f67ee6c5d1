// Package http exposes the configurator over REST and SSE.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/showroomhq/showroom/internal/catalog"
	"github.com/showroomhq/showroom/internal/logging"
	"github.com/showroomhq/showroom/internal/orders"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
	"github.com/showroomhq/showroom/pkg/session"
)

// Server wires the session manager, catalog, and order service into an
// HTTP API. Mutations broadcast the resulting state to SSE subscribers
// of the same vehicle.
type Server struct {
	sessions  *session.Manager
	catalog   ports.CatalogStore
	orders    *orders.Service
	pricer    *catalog.Pricer
	validator *catalog.Validator
	streams   *StreamManager
	metrics   *Metrics
	logger    *slog.Logger
	version   string
}

// Config carries the server's collaborators.
type Config struct {
	Sessions  *session.Manager
	Catalog   ports.CatalogStore
	Orders    *orders.Service
	Pricer    *catalog.Pricer
	Validator *catalog.Validator
	Logger    *slog.Logger
	Version   string
}

// NewServer creates a Server. Logger defaults to a no-op logger.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Server{
		sessions:  cfg.Sessions,
		catalog:   cfg.Catalog,
		orders:    cfg.Orders,
		pricer:    cfg.Pricer,
		validator: cfg.Validator,
		streams:   NewStreamManager(logger),
		metrics:   NewMetrics(),
		logger:    logger,
		version:   cfg.Version,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", s.handleListVehicles)
			r.Get("/{vehicleID}", s.handleGetVehicle)
			r.Get("/{vehicleID}/trims", s.handleListTrims)
			r.Get("/{vehicleID}/colors", s.handleListColors)
			r.Get("/{vehicleID}/packages", s.handleListPackages)
			r.Get("/{vehicleID}/options", s.handleListOptions)
		})

		r.Route("/configurations", func(r chi.Router) {
			r.Get("/", s.handleListConfigurations)
			r.Put("/{vehicleID}", s.handleOpenConfiguration)
			r.Get("/{vehicleID}", s.handleGetConfiguration)
			r.Delete("/{vehicleID}", s.handleDeleteConfiguration)
			r.Post("/{vehicleID}/actions", s.handleDispatchAction)
			r.Get("/{vehicleID}/gating", s.handleGating)
			r.Post("/{vehicleID}/reset", s.handleResetConfiguration)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", s.handleSubmitOrder)
			r.Get("/", s.handleListOrders)
			r.Post("/bulk", s.handleBulkOrders)
			r.Get("/{orderID}", s.handleGetOrder)
			r.Post("/{orderID}/status", s.handleOrderStatus)
		})

		r.Get("/events", s.handleEvents)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"app":     "showroom",
		"version": s.version,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}

// respondDomainError maps sentinel errors onto HTTP statuses.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConfigurationNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidOrderTransition):
		s.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrOrderNotSubmittable):
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("request failed", "err", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// broadcast pushes the new state to SSE subscribers of the vehicle.
func (s *Server) broadcast(vehicleID string, state domain.ConfigurationState) {
	payload, err := json.Marshal(state)
	if err != nil {
		s.logger.Error("state encode for broadcast failed", "vehicle_id", vehicleID, "err", err)
		return
	}
	s.streams.Broadcast(vehicleID, string(payload))
}

// HTTPServer wraps the handler in an http.Server ready for
// ListenAndServe and graceful shutdown.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
