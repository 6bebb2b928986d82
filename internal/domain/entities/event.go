package entities

// Category classifies an event for capacity accounting.
type Category string

const (
	CategoryTechnical    Category = "Technical"
	CategoryNonTechnical Category = "Non-Technical"
)

// EventConfig describes one catalog entry. The catalog is static
// configuration: loaded once at startup and never mutated at runtime.
type EventConfig struct {
	Name           string   `toml:"name"`
	Category       Category `toml:"category"`
	MaxTeamMembers int      `toml:"max_team_members"`
	RequiresFile   bool     `toml:"requires_file"`
	Description    string   `toml:"description"`
}

// Catalog is the fixed set of events open for registration.
type Catalog []EventConfig

// DefaultCatalog returns the built-in five-event catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:           "Paper Quest",
			Category:       CategoryTechnical,
			MaxTeamMembers: 3,
			RequiresFile:   true,
			Description:    "Present your research or project ideas. Presentation upload required.",
		},
		{
			Name:           "Hack'n'Hammer",
			Category:       CategoryTechnical,
			MaxTeamMembers: 3,
			Description:    "Intensive coding competition with challenging problem statements.",
		},
		{
			Name:           "Byte Fest",
			Category:       CategoryTechnical,
			MaxTeamMembers: 2,
			Description:    "Technology showcase and innovation event.",
		},
		{
			Name:           "Cinephile",
			Category:       CategoryNonTechnical,
			MaxTeamMembers: 2,
			Description:    "Movie and film-related quizzes and creative challenges.",
		},
		{
			Name:           "e-sports",
			Category:       CategoryNonTechnical,
			MaxTeamMembers: 3,
			Description:    "Competitive gaming tournaments across popular titles.",
		},
	}
}

// Get returns the config for name, or nil when the event is not in the catalog.
func (c Catalog) Get(name string) *EventConfig {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// Names returns the event names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i := range c {
		names[i] = c[i].Name
	}
	return names
}

// NamesIn returns the names of all events belonging to category.
func (c Catalog) NamesIn(category Category) []string {
	var names []string
	for i := range c {
		if c[i].Category == category {
			names = append(names, c[i].Name)
		}
	}
	return names
}

// Categories returns the distinct categories present, in catalog order.
func (c Catalog) Categories() []Category {
	var out []Category
	seen := map[Category]bool{}
	for i := range c {
		if !seen[c[i].Category] {
			seen[c[i].Category] = true
			out = append(out, c[i].Category)
		}
	}
	return out
}
