package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional user configuration file for the CLI
// (~/.config/inkwell/config.yaml).
type FileConfig struct {
	// Root overrides the storage root (the vault is Root/Notes).
	Root string `yaml:"root"`

	// DefaultColor is the packed color value assigned to new notes created
	// without an explicit color.
	DefaultColor int `yaml:"default_color"`
}

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inkwell", "config.yaml"), nil
}

// LoadConfig reads a FileConfig from path. An empty path uses the default
// location. A missing file is not an error; it yields the zero config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
