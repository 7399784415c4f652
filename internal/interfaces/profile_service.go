package interfaces

import (
	"github.com/ternarybob/praedium/internal/models"
)

// ProfileService loads developer preference profiles from disk
type ProfileService interface {
	// Load returns the named profile, or the built-in default when
	// name is empty and no default profile is configured
	Load(name string) (models.DeveloperPreferences, error)

	// List returns the names of all available profiles
	List() ([]string, error)
}
