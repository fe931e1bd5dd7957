package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultCatalogName is the hearthstonejson export the tool expects by default
const DefaultCatalogName = "cards.collectible.json"

// Config represents the application configuration
type Config struct {
	DefaultCatalog string `toml:"default_catalog"`
	LogLevel       string `toml:"log_level"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCatalogLibraryPath returns the directory holding card datasets
func GetCatalogLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "hearthlodge", "catalogs")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "hearthlodge", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if needed
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, errors.Wrap(err, "decoding config file")
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DefaultCatalog: DefaultCatalogName,
		LogLevel:       "warn",
	}
}

// createDefaultConfig writes and returns the default config
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	file, err := os.Create(configPath)
	if err != nil {
		return errors.Wrap(err, "creating config file")
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return nil
}

// GetCatalogPath resolves a dataset name, first in the catalog library and
// then as a plain path
func GetCatalogPath(name string) (string, error) {
	libraryPath := filepath.Join(GetCatalogLibraryPath(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", errors.Errorf("card dataset not found: %s", name)
}

// GetDefaultCatalog returns the default dataset name from config
func GetDefaultCatalog() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultCatalog, nil
}

// SetDefaultCatalog stores name as the default dataset
func SetDefaultCatalog(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultCatalog = name
	return writeConfig(config)
}
