// Package config defines the startup configuration of jogos.
//
// Configuration is what the process is started with: where the data lives,
// how the HTTP server listens and which IGDB credentials to use. It is
// distinct from user preferences (internal/preferences), which the
// application itself writes while running.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings (serve command)
//	├── Metadata       - IGDB client and worker settings
//	├── DataFolder     - Database, preferences and covers root
//	├── DatabaseName   - DuckDB file name inside DataFolder
//	├── CoversFolder   - Cover images (defaults to DataFolder/covers)
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────┬─────────┬────────────────────────────────────────┐
//	│ Field    │ Default │ Description                            │
//	├──────────┼─────────┼────────────────────────────────────────┤
//	│ Mode     │ "dev"   │ Gin mode: "prod" (release) or "dev"    │
//	│ HTTPPort │ 8000    │ HTTP server listen port                │
//	└──────────┴─────────┴────────────────────────────────────────┘
//
// # Metadata Configuration
//
//	┌──────────────┬─────────┬────────────────────────────────────────┐
//	│ Field        │ Default │ Description                            │
//	├──────────────┼─────────┼────────────────────────────────────────┤
//	│ ClientID     │ ""      │ Twitch application client id           │
//	│ ClientSecret │ ""      │ Twitch application secret (sensitive)  │
//	│ Workers      │ 2       │ Scheduler workers for remote work      │
//	│ Timeout      │ 15s     │ Per search / download timeout          │
//	└──────────────┴─────────┴────────────────────────────────────────┘
//
// Without ClientID and ClientSecret the metadata search reports the
// service as unavailable; everything else works offline.
//
// # Derived Paths
//
//	DatabasePath()    → DataFolder/DatabaseName
//	CoversPath()      → CoversFolder, or DataFolder/covers
//	PreferencesPath() → DataFolder/preferences.yaml
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Metadata
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithServer(Server), WithMetadata(Metadata), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging
//
// # Debug Logging
//
// Fields are tagged `debugmap:"visible"` except ClientSecret, which is
// `debugmap:"sensitive"` and is masked in DebugMap():
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
