// Package showroom is the embeddable facade over the vehicle
// configurator: a session manager plus per-vehicle handles with
// convenience methods for every wizard action and gating query.
package showroom

import (
	"context"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
	"github.com/showroomhq/showroom/pkg/reducer"
	"github.com/showroomhq/showroom/pkg/session"
)

// Version is the release version, stamped at build time via -ldflags.
var Version = "0.3.0-dev"

// Configurator owns the configuration sessions of one deployment.
type Configurator struct {
	manager *session.Manager
}

// New creates a Configurator persisting to the given store. Session
// options (locking, hooks, clock, persistence) pass through unchanged.
func New(store ports.ConfigStore, opts ...session.Option) *Configurator {
	return &Configurator{manager: session.NewManager(store, opts...)}
}

// Manager exposes the underlying session manager for host wiring.
func (c *Configurator) Manager() *session.Manager {
	return c.manager
}

// List returns the vehicle ids with live or stored configurations.
func (c *Configurator) List(ctx context.Context) ([]string, error) {
	return c.manager.List(ctx)
}

// Session returns a handle bound to one vehicle's configuration. The
// configuration itself is created lazily on first use.
func (c *Configurator) Session(vehicleID string) *Session {
	return &Session{manager: c.manager, vehicleID: vehicleID}
}

// Session is a per-vehicle view of the configurator. Handles are cheap
// and stateless; all state lives in the manager.
type Session struct {
	manager   *session.Manager
	vehicleID string
}

// VehicleID returns the vehicle this session is bound to.
func (s *Session) VehicleID() string {
	return s.vehicleID
}

// Open returns the configuration, creating it from defaults merged with
// the stored snapshot and then the optional patch.
func (s *Session) Open(ctx context.Context, patch *domain.StatePatch) (domain.ConfigurationState, error) {
	return s.manager.Open(ctx, s.vehicleID, patch)
}

// State returns the current configuration.
func (s *Session) State(ctx context.Context) (domain.ConfigurationState, error) {
	return s.manager.Get(ctx, s.vehicleID)
}

// Dispatch applies any reducer action.
func (s *Session) Dispatch(ctx context.Context, action reducer.Action) (domain.ConfigurationState, error) {
	return s.manager.Dispatch(ctx, s.vehicleID, action)
}

// SetTrim selects the trim level.
func (s *Session) SetTrim(ctx context.Context, trimID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.SetTrim{TrimID: trimID})
}

// SetColor selects the exterior color.
func (s *Session) SetColor(ctx context.Context, colorID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.SetColor{ColorID: colorID})
}

// AddPackage adds a package if absent.
func (s *Session) AddPackage(ctx context.Context, packageID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.AddPackage{PackageID: packageID})
}

// RemovePackage removes a package if present.
func (s *Session) RemovePackage(ctx context.Context, packageID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.RemovePackage{PackageID: packageID})
}

// TogglePackage flips a package selection.
func (s *Session) TogglePackage(ctx context.Context, packageID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.TogglePackage{PackageID: packageID})
}

// AddOption adds an option if absent.
func (s *Session) AddOption(ctx context.Context, optionID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.AddOption{OptionID: optionID})
}

// RemoveOption removes an option if present.
func (s *Session) RemoveOption(ctx context.Context, optionID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.RemoveOption{OptionID: optionID})
}

// ToggleOption flips an option selection.
func (s *Session) ToggleOption(ctx context.Context, optionID string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.ToggleOption{OptionID: optionID})
}

// NextStep advances the wizard when the current step's gate allows it.
func (s *Session) NextStep(ctx context.Context) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.NextStep{})
}

// PreviousStep retreats one step.
func (s *Session) PreviousStep(ctx context.Context) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.PreviousStep{})
}

// GoToStep jumps to a step when it is accessible.
func (s *Session) GoToStep(ctx context.Context, step domain.Step) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.GoToStep{Step: step})
}

// MarkStepComplete records a step as completed.
func (s *Session) MarkStepComplete(ctx context.Context, step domain.Step) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.MarkStepComplete{Step: step})
}

// SetNotes replaces the free-form notes.
func (s *Session) SetNotes(ctx context.Context, notes string) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.SetNotes{Notes: notes})
}

// BulkUpdate merges a partial state over the current one.
func (s *Session) BulkUpdate(ctx context.Context, patch domain.StatePatch) (domain.ConfigurationState, error) {
	return s.Dispatch(ctx, reducer.BulkUpdate{Patch: patch})
}

// Reset discards the configuration and returns the defaults.
func (s *Session) Reset(ctx context.Context) (domain.ConfigurationState, error) {
	return s.manager.Reset(ctx, s.vehicleID)
}

// Delete removes the configuration from memory and the store.
func (s *Session) Delete(ctx context.Context) error {
	return s.manager.Delete(ctx, s.vehicleID)
}

// CanProceed reports whether the current step's gate is satisfied.
func (s *Session) CanProceed(ctx context.Context) (bool, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, err
	}
	return reducer.CanProceedToNextStep(state), nil
}

// CanGoBack reports whether the wizard can retreat.
func (s *Session) CanGoBack(ctx context.Context) (bool, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, err
	}
	return reducer.CanGoToPreviousStep(state), nil
}

// IsStepAccessible reports whether the user may jump to step.
func (s *Session) IsStepAccessible(ctx context.Context, step domain.Step) (bool, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, err
	}
	return reducer.IsStepAccessible(state, step), nil
}
