package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/riskview/pkg/domain/model/config"
	"github.com/secmon-lab/riskview/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

const (
	minScore = 1
	maxScore = 5
)

// AppConfig represents the application configuration
type AppConfig struct {
	Severities []Severity `toml:"severity"`
}

// Severity represents a severity level configuration
type Severity struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Score int    `toml:"score"`
}

// Validate checks if the Severity is valid
func (s *Severity) Validate() error {
	id := types.SeverityID(s.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidSeverityID, err.Error(), goerr.V(SeverityIDKey, s.ID))
	}
	if s.Name == "" {
		return goerr.Wrap(ErrMissingName, "severity name is required", goerr.V(SeverityIDKey, s.ID))
	}
	if s.Color == "" {
		return goerr.Wrap(ErrMissingColor, "severity color is required", goerr.V(SeverityIDKey, s.ID))
	}
	if s.Score < minScore || s.Score > maxScore {
		return goerr.Wrap(ErrInvalidScore, "invalid severity score",
			goerr.V(SeverityIDKey, s.ID),
			goerr.V("score", s.Score),
		)
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	ids := make(map[string]bool)
	for i, sev := range a.Severities {
		if err := sev.Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity", goerr.V(SeverityIndexKey, i))
		}
		if ids[sev.ID] {
			return goerr.Wrap(ErrDuplicateSeverityID, "severity IDs must be unique",
				goerr.V(SeverityIDKey, sev.ID),
				goerr.V(SeverityIndexKey, i),
			)
		}
		ids[sev.ID] = true
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ToDomainPalette converts AppConfig to the domain palette. A config without
// severities keeps the built-in palette.
func (a *AppConfig) ToDomainPalette() *domainConfig.Palette {
	if len(a.Severities) == 0 {
		return domainConfig.DefaultPalette()
	}

	levels := make([]domainConfig.SeverityLevel, len(a.Severities))
	for i, sev := range a.Severities {
		levels[i] = domainConfig.SeverityLevel{
			ID:    types.SeverityID(sev.ID),
			Name:  sev.Name,
			Color: sev.Color,
			Score: sev.Score,
		}
	}
	return &domainConfig.Palette{Levels: levels}
}

// File holds the optional path of the TOML configuration file
type File struct {
	path string
}

// Flags returns CLI flags for the configuration file
func (f *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("RISKVIEW_CONFIG"),
			Destination: &f.path,
		},
	}
}

// Path returns the configured file path, empty when not set
func (f *File) Path() string {
	return f.path
}

// Configure loads the palette from the configuration file. Without a file
// the built-in palette is returned.
func (f *File) Configure() (*domainConfig.Palette, error) {
	if f.path == "" {
		return domainConfig.DefaultPalette(), nil
	}

	cfg, err := LoadAppConfiguration(f.path)
	if err != nil {
		return nil, err
	}
	return cfg.ToDomainPalette(), nil
}
