package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dob/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-DOB/"), "UserAgent must start with AppName/")
}

// TestBurstDefaults_Sanity checks the confetti constants against the observed browser behavior.
func TestBurstDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 140, config.DefaultBurstParticles)
	assert.Equal(t, 4500*time.Millisecond, config.DefaultBurstDuration)
	assert.InDelta(t, 0.06, config.DefaultBurstGravity, 1e-9)
	assert.Len(t, config.DefaultPalette, 8)
	assert.Greater(t, config.ModalAutoHide, time.Duration(0))
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettings_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	content := "burst:\n  particles: 60\n  duration: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 60, s.Burst.Particles)
	assert.Equal(t, 2*time.Second, s.Burst.Duration)
	// Untouched fields keep their defaults.
	assert.InDelta(t, config.DefaultBurstGravity, s.Burst.Gravity, 1e-9)
	assert.Equal(t, config.DefaultPalette, s.Burst.Palette)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Malformed YAML", "burst: [", config.ErrSettingsParse},
		{"Negative particles", "burst:\n  particles: -1\n", config.ErrSettingsInvalid},
		{"Zero duration", "burst:\n  duration: 0s\n", config.ErrSettingsInvalid},
		{"Bad color", "burst:\n  palette: [\"#GGGGGG\"]\n", config.ErrSettingsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.SettingsFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), config.FilePermUserRW))

			s, err := config.LoadSettings(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, config.DefaultSettings(), s, "Errors must fall back to defaults")
		})
	}
}

func TestDefaultSettings_IsValid(t *testing.T) {
	assert.NoError(t, config.DefaultSettings().Validate())
}
