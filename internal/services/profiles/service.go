package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/praedium/internal/common"
	"github.com/ternarybob/praedium/internal/interfaces"
	"github.com/ternarybob/praedium/internal/models"
)

// Service loads developer preference profiles from TOML files in the
// configured profiles directory. The file stem is the profile name:
// profiles/aggressive.toml is the profile "aggressive".
type Service struct {
	config   *common.PreferencesConfig
	validate *validator.Validate
	logger   arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ProfileService = (*Service)(nil)

// NewService creates a profile service
func NewService(config *common.PreferencesConfig, logger arbor.ILogger) *Service {
	return &Service{
		config:   config,
		validate: validator.New(),
		logger:   logger,
	}
}

// Load returns the named profile. An empty name resolves to the
// configured default profile, and finally to the built-in default when
// neither is set.
func (s *Service) Load(name string) (models.DeveloperPreferences, error) {
	if name == "" {
		name = s.config.DefaultProfile
	}
	if name == "" || name == "default" {
		if !s.profileExists(name) {
			s.logger.Debug().Msg("No profile configured, using built-in default preferences")
			return models.DefaultPreferences(), nil
		}
	}

	path := filepath.Join(s.config.ProfilesDir, name+".toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return models.DeveloperPreferences{}, fmt.Errorf("failed to read profile %q: %w", name, err)
	}

	prefs := models.DefaultPreferences()
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return models.DeveloperPreferences{}, fmt.Errorf("failed to parse profile %q: %w", name, err)
	}
	prefs.Name = name

	if err := s.validate.Struct(prefs); err != nil {
		return models.DeveloperPreferences{}, fmt.Errorf("profile %q failed validation: %w", name, err)
	}

	s.logger.Info().
		Str("profile", name).
		Float64("risk_tolerance", prefs.RiskTolerance).
		Float64("min_roi_threshold", prefs.MinROIThreshold).
		Msg("Loaded preference profile")

	return prefs, nil
}

// List returns the names of all available profiles, sorted
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.config.ProfilesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	sort.Strings(names)

	return names, nil
}

func (s *Service) profileExists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.config.ProfilesDir, name+".toml"))
	return err == nil
}
