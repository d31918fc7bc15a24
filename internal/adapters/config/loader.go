// Package config loads the optional remake.yaml project file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the file looked up when no path is given.
const DefaultFilename = "remake.yaml"

// Loader implements ports.ConfigLoader on YAML files.
type Loader struct {
	logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the file at path. An empty path means DefaultFilename. A missing
// file yields the default limits and no rules.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no config file, using defaults", "path", path)
		return &domain.Config{Limits: domain.DefaultLimits()}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded config", "path", path, "rules", len(cfg.Rules))
	return cfg, nil
}

// Parse decodes and validates a config document.
func (l *Loader) Parse(data []byte) (*domain.Config, error) {
	var file Remakefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.Wrap(err, "invalid config file")
	}

	return toDomain(&file), nil
}

func toDomain(file *Remakefile) *domain.Config {
	cfg := &domain.Config{Limits: domain.DefaultLimits()}

	if file.Limits != nil {
		if file.Limits.MaxTargets != nil {
			cfg.Limits.MaxTargets = *file.Limits.MaxTargets
		}
		if file.Limits.MaxDependencies != nil {
			cfg.Limits.MaxDependencies = *file.Limits.MaxDependencies
		}
	}

	for _, r := range file.Rules {
		cfg.Rules = append(cfg.Rules, domain.Rule{
			Target:    r.Target,
			DependsOn: append([]string(nil), r.DependsOn...),
		})
	}

	return cfg
}

var _ ports.ConfigLoader = (*Loader)(nil)
