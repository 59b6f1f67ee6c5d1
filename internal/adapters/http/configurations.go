package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/reducer"
)

// handleOpenConfiguration returns the configuration for a vehicle,
// creating it on first access. An optional StatePatch body is merged
// over the stored snapshot.
func (s *Server) handleOpenConfiguration(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")

	var patch *domain.StatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := s.sessions.Open(r.Context(), vehicleID, patch); err != nil {
		s.respondDomainError(w, err)
		return
	}

	state, err := s.refresh(r.Context(), vehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.broadcast(vehicleID, state)
	s.respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")
	state, err := s.sessions.Get(r.Context(), vehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleListConfigurations(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string][]string{"vehicle_ids": ids})
}

func (s *Server) handleDeleteConfiguration(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")
	if err := s.sessions.Delete(r.Context(), vehicleID); err != nil &&
		!errors.Is(err, domain.ErrConfigurationNotFound) {
		s.respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDispatchAction applies one reducer action, recomputes pricing and
// validation, broadcasts the result, and returns the new state. Gated-off
// actions are not errors; the response simply carries the unchanged state.
func (s *Server) handleDispatchAction(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	action, err := decodeAction(req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.ObserveAction(req.Type)

	if _, err := s.sessions.Dispatch(r.Context(), vehicleID, action); err != nil {
		s.respondDomainError(w, err)
		return
	}

	state, err := s.refresh(r.Context(), vehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.broadcast(vehicleID, state)
	s.respondJSON(w, http.StatusOK, state)
}

// handleResetConfiguration discards the configuration and returns the
// defaults. No pricing or validation is attached: the reset state is
// pristine until the next mutation.
func (s *Server) handleResetConfiguration(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")
	state, err := s.sessions.Reset(r.Context(), vehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.broadcast(vehicleID, state)
	s.respondJSON(w, http.StatusOK, state)
}

// GatingResponse reports the navigation predicates for the current state.
type GatingResponse struct {
	CurrentStep     domain.Step          `json:"current_step"`
	CanProceed      bool                 `json:"can_proceed_to_next_step"`
	CanGoBack       bool                 `json:"can_go_to_previous_step"`
	AccessibleSteps map[domain.Step]bool `json:"accessible_steps"`
}

func (s *Server) handleGating(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleID")
	state, err := s.sessions.Get(r.Context(), vehicleID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	resp := GatingResponse{
		CurrentStep:     state.CurrentStep,
		CanProceed:      reducer.CanProceedToNextStep(state),
		CanGoBack:       reducer.CanGoToPreviousStep(state),
		AccessibleSteps: make(map[domain.Step]bool, len(domain.Steps())),
	}
	for _, step := range domain.Steps() {
		resp.AccessibleSteps[step] = reducer.IsStepAccessible(state, step)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// refresh recomputes pricing and validation from the catalog and attaches
// both via reducer actions. An unknown vehicle skips pricing; the
// validator reports it as a validation error instead.
func (s *Server) refresh(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	state, err := s.sessions.Get(ctx, vehicleID)
	if err != nil {
		return domain.ConfigurationState{}, err
	}

	pricing, err := s.pricer.Price(ctx, state)
	if err == nil {
		if state, err = s.sessions.Dispatch(ctx, vehicleID, reducer.UpdatePricing{Pricing: pricing}); err != nil {
			return domain.ConfigurationState{}, err
		}
	} else if !errors.Is(err, domain.ErrVehicleNotFound) {
		return domain.ConfigurationState{}, err
	}

	validation, err := s.validator.Validate(ctx, state)
	if err != nil {
		return domain.ConfigurationState{}, err
	}
	return s.sessions.Dispatch(ctx, vehicleID, reducer.UpdateValidation{Validation: validation})
}

// handleEvents serves the SSE stream of state changes for one vehicle.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		s.respondError(w, http.StatusBadRequest, "vehicle_id query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.respondError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe(vehicleID)
	defer cancel()
	s.metrics.sseClients.Inc()
	defer s.metrics.sseClients.Dec()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("sse client disconnected", "vehicle_id", vehicleID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
