// Package config loads registry seed scenarios from YAML, so fixture
// consumers can describe a pre-populated registry in a file instead of a
// setup function.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/userstore/registry"
)

// SeedUser describes one user to create when a scenario is applied.
type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Inactive bool   `yaml:"inactive,omitempty"`
}

// Scenario holds the seed state for a registry, loaded from userstore.yml.
type Scenario struct {
	Users []SeedUser `yaml:"users,omitempty"`
}

// Load attempts to read userstore.yml or userstore.yaml from the given
// directory. Returns a zero-value scenario (not an error) if no scenario
// file exists.
func Load(dir string) (*Scenario, error) {
	for _, name := range []string{"userstore.yml", "userstore.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var sc Scenario
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, err
		}
		return &sc, nil
	}
	return &Scenario{}, nil
}

// Apply creates the scenario's users in listed order, deactivating those
// marked inactive. It stops at the first user the registry rejects.
func (s *Scenario) Apply(r *registry.Registry) error {
	for _, seed := range s.Users {
		u, err := r.CreateUser(seed.Name, seed.Email)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", seed.Name, err)
		}
		if seed.Inactive {
			if _, err := r.DeactivateUser(u.ID); err != nil {
				return fmt.Errorf("deactivate seed user %q: %w", seed.Name, err)
			}
		}
	}
	return nil
}
