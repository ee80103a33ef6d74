package catalog

import "cookit/internal/domain"

// Bundle is the catalog document served at the configured URL.
type Bundle struct {
	Recipes []domain.Recipe `json:"recipes"`
}
