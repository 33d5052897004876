package storage

import "github.com/blackcoderx/weburl/pkg/environment"

// configVersion is written to every saved environments file.
const configVersion = 1

// configFile is the YAML shape of the persisted environment configuration.
type configFile struct {
	Version            int `yaml:"version"`
	environment.Config `yaml:",inline"`
}

// Settings are the CLI preferences stored in settings.yaml and read through viper.
type Settings struct {
	Catalog   string `yaml:"catalog"`   // Default catalog file
	Format    string `yaml:"format"`    // Default output format
	Copy      bool   `yaml:"copy"`      // Copy artifacts to the clipboard
	Pretty    bool   `yaml:"pretty"`    // Render artifacts with glamour
	LogLevel  string `yaml:"log_level"` // debug, info, warn, error
	LogFormat string `yaml:"log_format"`
}

// DefaultSettings returns the preferences written on first run.
func DefaultSettings() Settings {
	return Settings{
		Catalog:   "catalog.yaml",
		Format:    "curl",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}
