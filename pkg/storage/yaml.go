// Package storage persists the environment configuration and CLI settings as
// YAML files inside the workspace folder.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackcoderx/weburl/pkg/environment"
	"gopkg.in/yaml.v3"
)

const (
	// EnvironmentsFile is the file name of the persisted environment configuration.
	EnvironmentsFile = "environments.yaml"
	// SettingsFile is the file name of the CLI preferences.
	SettingsFile = "settings.yaml"
)

// ErrNoConfig is returned when the environments file does not exist.
var ErrNoConfig = errors.New("no environment configuration")

// LoadConfig loads the environment configuration from a YAML file and
// repairs its invariants.
func LoadConfig(filePath string) (*environment.Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, filePath)
		}
		return nil, fmt.Errorf("failed to read environments file: %w", err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse environments YAML: %w", err)
	}

	cfg := file.Config
	cfg.Repair()
	return &cfg, nil
}

// LoadOrCreateConfig loads the configuration, falling back to a fresh one
// with a single default environment when the file does not exist yet.
func LoadOrCreateConfig(filePath string) (*environment.Config, error) {
	cfg, err := LoadConfig(filePath)
	if errors.Is(err, ErrNoConfig) {
		return environment.NewConfig(), nil
	}
	return cfg, err
}

// SaveConfig writes the environment configuration to a YAML file.
func SaveConfig(cfg *environment.Config, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(configFile{Version: configVersion, Config: *cfg})
	if err != nil {
		return fmt.Errorf("failed to marshal environments: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// SaveSettings writes CLI preferences to a YAML file.
func SaveSettings(s Settings, filePath string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// GetEnvironmentsPath returns the environments file path inside a workspace.
func GetEnvironmentsPath(baseDir string) string {
	return filepath.Join(baseDir, EnvironmentsFile)
}

// GetSettingsPath returns the settings file path inside a workspace.
func GetSettingsPath(baseDir string) string {
	return filepath.Join(baseDir, SettingsFile)
}
