package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showroomhq/showroom/internal/orders"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// submitOrderRequest creates an order from the vehicle's live
// configuration; the snapshot is taken server-side.
type submitOrderRequest struct {
	VehicleID    string `json:"vehicle_id"`
	DealerID     string `json:"dealer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VehicleID == "" {
		s.respondError(w, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	if req.DealerID == "" {
		s.respondError(w, http.StatusBadRequest, "dealer_id is required")
		return
	}

	state, err := s.refresh(r.Context(), req.VehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	order, err := s.orders.Submit(r.Context(), orders.SubmitRequest{
		DealerID:      req.DealerID,
		CustomerName:  req.CustomerName,
		Notes:         req.Notes,
		Configuration: state,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.metrics.ObserveOrderSubmitted()
	s.respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	filter := ports.OrderFilter{
		DealerID: r.URL.Query().Get("dealer_id"),
		Status:   domain.OrderStatus(r.URL.Query().Get("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		s.respondError(w, http.StatusBadRequest, "unknown status filter")
		return
	}

	listed, err := s.orders.List(r.Context(), filter)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	if listed == nil {
		listed = []domain.Order{}
	}
	s.respondJSON(w, http.StatusOK, listed)
}

type orderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.orders.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleBulkOrders(w http.ResponseWriter, r *http.Request) {
	var req orders.BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		s.respondError(w, http.StatusBadRequest, "ids must not be empty")
		return
	}

	result, err := s.orders.Bulk(r.Context(), req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}
