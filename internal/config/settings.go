package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// BurstSettings tunes the confetti simulation.
type BurstSettings struct {
	Particles  int           `yaml:"particles"`
	Duration   time.Duration `yaml:"duration"`
	Gravity    float64       `yaml:"gravity"`
	CullMargin float64       `yaml:"cull_margin"`
	Palette    []string      `yaml:"palette,omitempty"`

	// Seed fixes the random source when non-zero.
	Seed uint64 `yaml:"seed,omitempty"`
}

// Settings models the optional config.yaml file.
type Settings struct {
	Version int           `yaml:"version"`
	Burst   BurstSettings `yaml:"burst"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return Settings{
		Version: 1,
		Burst: BurstSettings{
			Particles:  DefaultBurstParticles,
			Duration:   DefaultBurstDuration,
			Gravity:    DefaultBurstGravity,
			CullMargin: DefaultCullMargin,
			Palette:    palette,
		},
	}
}

// DefaultSettingsPath returns <UserConfigDir>/<AppID>/config.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppID, SettingsFileName), nil
}

// LoadSettings reads the YAML settings at path, or at DefaultSettingsPath when path is empty.
// A missing file yields the defaults. Fields absent from the file keep their default value.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		p, err := DefaultSettingsPath()
		if err != nil {
			return settings, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug(MsgSettingsDefaults,
			LogKeyComponent, CompConfig,
			LogKeyPath, path,
		)
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompConfig,
		LogKeyPath, path,
		LogKeyParticles, settings.Burst.Particles,
	)
	return settings, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	b := s.Burst
	switch {
	case b.Particles < 0 || b.Particles > MaxBurstParticles:
		return fmt.Errorf("%s: particles must be between 0 and %d", ErrSettingsInvalid, MaxBurstParticles)
	case b.Duration <= 0:
		return fmt.Errorf("%s: duration must be positive", ErrSettingsInvalid)
	case b.Gravity < 0:
		return fmt.Errorf("%s: gravity must not be negative", ErrSettingsInvalid)
	case b.CullMargin < 0:
		return fmt.Errorf("%s: cull_margin must not be negative", ErrSettingsInvalid)
	case len(b.Palette) == 0:
		return fmt.Errorf("%s: palette must not be empty", ErrSettingsInvalid)
	}

	for _, hex := range b.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%s: palette color %q: %w", ErrSettingsInvalid, hex, err)
		}
	}
	return nil
}
