package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/showroomhq/showroom/pkg/domain"
)

// Seed is the on-disk catalog document consumed by "showroom seed" and by
// the static in-memory catalog.
type Seed struct {
	Vehicles []domain.Vehicle `yaml:"vehicles"`
	Trims    []domain.Trim    `yaml:"trims"`
	Colors   []domain.Color   `yaml:"colors"`
	Packages []domain.Package `yaml:"packages"`
	Options  []domain.Option  `yaml:"options"`
}

// LoadSeed reads and parses a YAML catalog file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return &seed, nil
}
