package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/showroomhq/showroom/internal/logging"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
	"github.com/showroomhq/showroom/pkg/reducer"
)

// lockEntry holds a per-vehicle mutex and its reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager owns the live configuration states. Each dispatch runs to
// completion under the vehicle's lock before the next is accepted, so at
// most one mutation is ever in flight per configuration.
type Manager struct {
	store ports.ConfigStore

	mu     sync.Mutex
	locks  map[string]*lockEntry
	states map[string]domain.ConfigurationState

	locker  ports.DistributedLocker
	logger  *slog.Logger
	hooks   domain.ChangeHooks
	persist bool
	now     func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking across replicas.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for deferred errors.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithChangeHooks registers state-change callbacks.
func WithChangeHooks(hooks domain.ChangeHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithoutPersistence disables the store mirror; states live only in
// memory for the lifetime of the Manager.
func WithoutPersistence() Option {
	return func(m *Manager) {
		m.persist = false
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager mirroring to the given store.
func NewManager(store ports.ConfigStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		states:  make(map[string]domain.ConfigurationState),
		logger:  logging.NewNop(),
		persist: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and bumps its reference count.
func (m *Manager) acquire(vehicleID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[vehicleID]
	if !exists {
		entry = &lockEntry{}
		m.locks[vehicleID] = entry
	}
	entry.refs++
	return entry
}

// release drops the reference count, deleting the entry at zero.
func (m *Manager) release(vehicleID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[vehicleID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, vehicleID)
	}
}

// withLock executes fn while holding the vehicle's lock, acquiring the
// distributed lock first when configured.
func (m *Manager) withLock(ctx context.Context, vehicleID string, fn func(context.Context) error) error {
	entry := m.acquire(vehicleID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(vehicleID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, vehicleID, 30*time.Second)
		if err != nil {
			return err
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"vehicle_id", vehicleID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// current returns the live state for a vehicle, hydrating from the store
// on first access. Any load failure, not just absence, falls back to the
// default state: a broken snapshot must never block the configurator.
// Caller must hold the vehicle lock.
func (m *Manager) current(ctx context.Context, vehicleID string) domain.ConfigurationState {
	m.mu.Lock()
	state, ok := m.states[vehicleID]
	m.mu.Unlock()
	if ok {
		return state
	}

	if m.persist {
		loaded, err := m.store.Load(ctx, vehicleID)
		if err == nil {
			m.setState(vehicleID, loaded)
			return loaded
		}
		if !errors.Is(err, domain.ErrConfigurationNotFound) {
			m.logger.Warn("failed to load stored configuration; starting from defaults",
				"vehicle_id", vehicleID,
				"err", err,
			)
		}
	}

	state = domain.NewConfigurationState(vehicleID, m.now().UTC())
	m.setState(vehicleID, state)
	return state
}

func (m *Manager) setState(vehicleID string, state domain.ConfigurationState) {
	m.mu.Lock()
	m.states[vehicleID] = state
	m.mu.Unlock()
}

// commit stores the new state, mirrors it best-effort, and notifies hooks.
// Caller must hold the vehicle lock.
func (m *Manager) commit(ctx context.Context, vehicleID string, state domain.ConfigurationState) {
	m.setState(vehicleID, state)

	if m.persist {
		if err := m.store.Save(ctx, vehicleID, state); err != nil {
			m.logger.Warn("failed to persist configuration; in-memory state unaffected",
				"vehicle_id", vehicleID,
				"err", err,
			)
		}
	}

	if m.hooks.OnStateChange != nil {
		m.hooks.OnStateChange(ctx, vehicleID, state.Clone())
	}
}

// Open returns the configuration for a vehicle, creating it from defaults
// merged with the stored snapshot and then the supplied patch. The merge
// precedence is: defaults, then stored state, then patch.
func (m *Manager) Open(ctx context.Context, vehicleID string, patch *domain.StatePatch) (domain.ConfigurationState, error) {
	var state domain.ConfigurationState
	err := m.withLock(ctx, vehicleID, func(ctx context.Context) error {
		state = m.current(ctx, vehicleID)
		if patch != nil && !patch.IsZero() {
			state = state.ApplyPatch(*patch)
			state.UpdatedAt = m.now().UTC()
			m.commit(ctx, vehicleID, state)
		}
		return nil
	})
	return state, err
}

// Dispatch applies a reducer action and returns the resulting state.
// Gated-off and unknown actions return the current state unchanged; no
// error is reported for them, matching the silent-ignore policy.
func (m *Manager) Dispatch(ctx context.Context, vehicleID string, action reducer.Action) (domain.ConfigurationState, error) {
	var state domain.ConfigurationState
	err := m.withLock(ctx, vehicleID, func(ctx context.Context) error {
		before := m.current(ctx, vehicleID)
		state = reducer.Apply(before, action, m.now().UTC())
		m.commit(ctx, vehicleID, state)
		return nil
	})
	return state, err
}

// Get returns the live state for a vehicle, hydrating it if needed.
func (m *Manager) Get(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	var state domain.ConfigurationState
	err := m.withLock(ctx, vehicleID, func(ctx context.Context) error {
		state = m.current(ctx, vehicleID)
		return nil
	})
	return state, err
}

// Reset discards the configuration and returns the defaults for the same
// vehicle id.
func (m *Manager) Reset(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	return m.Dispatch(ctx, vehicleID, reducer.Reset{})
}

// Delete removes the configuration from memory and from the store.
func (m *Manager) Delete(ctx context.Context, vehicleID string) error {
	return m.withLock(ctx, vehicleID, func(ctx context.Context) error {
		m.mu.Lock()
		delete(m.states, vehicleID)
		m.mu.Unlock()
		if !m.persist {
			return nil
		}
		return m.store.Delete(ctx, vehicleID)
	})
}

// List returns the vehicle ids with live or stored configurations.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string

	m.mu.Lock()
	for id := range m.states {
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	m.mu.Unlock()

	if m.persist {
		stored, err := m.store.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range stored {
			if _, ok := seen[id]; !ok {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

// Store returns the underlying configuration store.
func (m *Manager) Store() ports.ConfigStore {
	return m.store
}
