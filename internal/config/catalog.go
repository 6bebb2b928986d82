package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"regportal/internal/domain/entities"
)

type catalogFile struct {
	Events []entities.EventConfig `toml:"events"`
}

// LoadCatalog returns the event catalog. With an empty path the built-in
// catalog is used; otherwise path must be a TOML file with an [[events]]
// table per entry.
func LoadCatalog(path string) (entities.Catalog, error) {
	if path == "" {
		return entities.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var file catalogFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("catalog: %s defines no events", path)
	}

	for _, e := range file.Events {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: event with empty name in %s", path)
		}
		if e.Category != entities.CategoryTechnical && e.Category != entities.CategoryNonTechnical {
			return nil, fmt.Errorf("catalog: event %q has unknown category %q", e.Name, e.Category)
		}
		if e.MaxTeamMembers < 1 || e.MaxTeamMembers > 3 {
			return nil, fmt.Errorf("catalog: event %q max_team_members must be 1-3, got %d", e.Name, e.MaxTeamMembers)
		}
	}

	return entities.Catalog(file.Events), nil
}
