// Package file provides a ConfigStore backed by JSON files on disk, one
// file per vehicle id. It is the server-side analog of the browser local
// storage the configurator originally mirrored to.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/showroomhq/showroom/internal/logging"
	"github.com/showroomhq/showroom/pkg/domain"
)

// Store implements ports.ConfigStore on the local filesystem.
type Store struct {
	BasePath string

	logger *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger used for non-fatal read anomalies.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store rooted at basePath. If basePath is empty it defaults
// to ".showroom/configurations".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".showroom", "configurations")
	}
	s := &Store{
		BasePath: basePath,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(vehicleID string) string {
	return filepath.Join(s.BasePath, vehicleID+".json")
}

// validateVehicleID rejects ids that would resolve to a path outside
// BasePath. Ids are used verbatim as file names.
func validateVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return fmt.Errorf("vehicleID cannot be empty")
	}
	if strings.ContainsAny(vehicleID, `/\`) {
		return fmt.Errorf("vehicleID cannot contain path separators")
	}
	return nil
}

// Save persists the state to a JSON file atomically: write to a temp file
// in the same directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, vehicleID string, state domain.ConfigurationState) error {
	if err := validateVehicleID(vehicleID); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure configuration directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+vehicleID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(vehicleID)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves the state for a vehicle id. A file that exists but does
// not decode is logged and reported as not found: a malformed snapshot
// must never block the configurator, which falls back to defaults.
func (s *Store) Load(ctx context.Context, vehicleID string) (domain.ConfigurationState, error) {
	if err := validateVehicleID(vehicleID); err != nil {
		return domain.ConfigurationState{}, err
	}

	data, err := os.ReadFile(s.path(vehicleID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ConfigurationState{}, domain.ErrConfigurationNotFound
		}
		return domain.ConfigurationState{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var state domain.ConfigurationState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("discarding malformed configuration snapshot",
			"vehicle_id", vehicleID,
			"err", err,
		)
		return domain.ConfigurationState{}, domain.ErrConfigurationNotFound
	}

	return state, nil
}

// Delete removes the configuration file. Absence is not an error.
func (s *Store) Delete(ctx context.Context, vehicleID string) error {
	if err := validateVehicleID(vehicleID); err != nil {
		return err
	}

	err := os.Remove(s.path(vehicleID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete configuration file: %w", err)
	}
	return nil
}

// List returns the vehicle ids with stored configurations.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			ids = append(ids, name[:len(name)-len(".json")])
		}
	}
	return ids, nil
}
