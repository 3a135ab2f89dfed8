// ABOUTME: Healthify configuration with JSON file and environment overrides.
// ABOUTME: Selects data location, HTTP listen address, and CORS origins.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/healthify/internal/storage"
)

// Config stores healthify configuration. File values come from the JSON
// config under the XDG config dir; HEALTHIFY_* environment variables
// override them.
type Config struct {
	// DataDir is the root directory for data storage. The SQLite
	// database lives at <DataDir>/healthify.db. Supports ~ expansion.
	DataDir string `json:"data_dir,omitempty" env:"HEALTHIFY_DATA_DIR"`

	// ListenAddr is the HTTP API bind address for the serve command.
	ListenAddr string `json:"listen_addr,omitempty" env:"HEALTHIFY_LISTEN_ADDR"`

	// CORSOrigins is the list of allowed origins for the HTTP API.
	CORSOrigins []string `json:"cors_origins,omitempty" env:"HEALTHIFY_CORS_ORIGINS" envSeparator:","`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the configured bind address, defaulting to :8000.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return ":8000"
	}
	return c.ListenAddr
}

// GetCORSOrigins returns the allowed origins, defaulting to the local
// dev frontends.
func (c *Config) GetCORSOrigins() []string {
	if len(c.CORSOrigins) == 0 {
		return []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:4173"}
	}
	return c.CORSOrigins
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository under the configured data dir.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "healthify.db")
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthify", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
