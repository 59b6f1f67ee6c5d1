package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showroomhq/showroom/pkg/domain"
)

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.catalog.Vehicles(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	s.respondJSON(w, http.StatusOK, vehicles)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := s.catalog.Vehicle(r.Context(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, vehicle)
}

// listHandler adapts one catalog list method into an http handler.
func listHandler[T any](s *Server, list func(context.Context, string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			s.respondDomainError(w, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		s.respondJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleListTrims(w http.ResponseWriter, r *http.Request) {
	listHandler(s, s.catalog.Trims)(w, r)
}

func (s *Server) handleListColors(w http.ResponseWriter, r *http.Request) {
	listHandler(s, s.catalog.Colors)(w, r)
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	listHandler(s, s.catalog.Packages)(w, r)
}

func (s *Server) handleListOptions(w http.ResponseWriter, r *http.Request) {
	listHandler(s, s.catalog.Options)(w, r)
}
