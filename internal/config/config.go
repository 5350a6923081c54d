package config

import (
	"path/filepath"
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Metadata

type Configuration struct {
	Server       Server   `debugmap:"visible"`
	Metadata     Metadata `debugmap:"visible"`
	DataFolder   string   `debugmap:"visible"`
	DatabaseName string   `debugmap:"visible" default:"jogos.duckdb"`
	CoversFolder string   `debugmap:"visible"`
	LogFormat    string   `debugmap:"visible" default:"console"`
	LogLevel     string   `debugmap:"visible" default:"info"`
}

type Server struct {
	Mode     string `debugmap:"visible" default:"dev"`
	HTTPPort int    `debugmap:"visible" default:"8000"`
}

type Metadata struct {
	ClientID     string        `debugmap:"visible"`
	ClientSecret string        `debugmap:"sensitive"`
	Workers      int           `debugmap:"visible" default:"2"`
	Timeout      time.Duration `debugmap:"visible" default:"15s"`
}

// DatabasePath is the DuckDB file inside the data folder.
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.DataFolder, c.DatabaseName)
}

// CoversPath is CoversFolder, or "covers" under the data folder when unset.
func (c *Configuration) CoversPath() string {
	if c.CoversFolder != "" {
		return c.CoversFolder
	}
	return filepath.Join(c.DataFolder, "covers")
}

func (c *Configuration) PreferencesPath() string {
	return filepath.Join(c.DataFolder, "preferences.yaml")
}
