// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session pair goes to the OS
// keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"datahive/admincli/internal/xdg"
)

// DefaultAPIBaseURL is the fixed origin of the DataHive admin API.
const DefaultAPIBaseURL = "https://api.datahive.co.in/api"

// DefaultPageSize is the number of rows shown per page in list views.
const DefaultPageSize = 20

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	PageSize   int    `json:"page_size"`
	LogLevel   string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// DATAHIVE_API_URL overrides the configured base URL when set.
func Load() (Config, error) {
	c := Config{
		APIBaseURL: DefaultAPIBaseURL,
		PageSize:   DefaultPageSize,
		LogLevel:   "info",
	}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if uerr := json.Unmarshal(data, &c); uerr != nil {
			return c, uerr
		}
	}
	if env := strings.TrimSpace(os.Getenv("DATAHIVE_API_URL")); env != "" {
		c.APIBaseURL = env
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}
