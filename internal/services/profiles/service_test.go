package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/praedium/internal/common"
)

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".toml"), []byte(content), 0644))
}

func newTestProfiles(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	config := &common.PreferencesConfig{ProfilesDir: dir}
	return NewService(config, common.GetLogger()), dir
}

func TestLoad_Profile(t *testing.T) {
	service, dir := newTestProfiles(t)

	writeProfile(t, dir, "aggressive", `
risk_tolerance = 0.85
min_roi_threshold = 25.0
max_development_timeline_months = 24
financing_preference = "hard-money"
preferred_property_types = ["mixed-use", "low-rise"]

[location_preferences]
Edmonton = 1.0
Calgary = 0.6
`)

	prefs, err := service.Load("aggressive")
	require.NoError(t, err)

	assert.Equal(t, "aggressive", prefs.Name)
	assert.Equal(t, 0.85, prefs.RiskTolerance)
	assert.Equal(t, 25.0, prefs.MinROIThreshold)
	assert.Equal(t, 24, prefs.MaxTimelineMonths)
	// Reserved fields still round-trip even though scoring ignores them
	assert.Equal(t, []string{"mixed-use", "low-rise"}, prefs.PreferredPropertyTypes)
	assert.Equal(t, 1.0, prefs.LocationPreferences["Edmonton"])
}

func TestLoad_BuiltInDefault(t *testing.T) {
	service, _ := newTestProfiles(t)

	prefs, err := service.Load("")
	require.NoError(t, err)

	assert.Equal(t, "default", prefs.Name)
	assert.Equal(t, 0.5, prefs.RiskTolerance)
	assert.Equal(t, 15.0, prefs.MinROIThreshold)
}

func TestLoad_PartialProfileKeepsDefaults(t *testing.T) {
	service, dir := newTestProfiles(t)

	writeProfile(t, dir, "sparse", `risk_tolerance = 0.2`)

	prefs, err := service.Load("sparse")
	require.NoError(t, err)

	assert.Equal(t, 0.2, prefs.RiskTolerance)
	// Unset fields inherit the built-in defaults
	assert.Equal(t, 15.0, prefs.MinROIThreshold)
	assert.Equal(t, 36, prefs.MaxTimelineMonths)
}

func TestLoad_ValidationFailure(t *testing.T) {
	service, dir := newTestProfiles(t)

	writeProfile(t, dir, "broken", `risk_tolerance = 1.5`)

	_, err := service.Load("broken")
	assert.Error(t, err, "risk tolerance above 1 must fail validation")
}

func TestLoad_MissingProfile(t *testing.T) {
	service, _ := newTestProfiles(t)

	_, err := service.Load("nope")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	service, dir := newTestProfiles(t)

	writeProfile(t, dir, "zeta", `risk_tolerance = 0.3`)
	writeProfile(t, dir, "alpha", `risk_tolerance = 0.7`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	names, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	config := &common.PreferencesConfig{ProfilesDir: "/nonexistent/profiles"}
	service := NewService(config, common.GetLogger())

	names, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
