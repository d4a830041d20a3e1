package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Defaults for the paging controls. Shared here so the table, the API layer,
// and the pager agree on a single source of truth.
const (
	DefaultPageSize   = 10
	DefaultPageWindow = 5
)

// Config holds all bettero configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Paging     PagingConfig     `toml:"paging"`
	Cache      CacheConfig      `toml:"cache"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// APIConfig holds the remote expense API settings. The base URL varies by
// deployment and can be overridden with BETTERO_API_URL.
type APIConfig struct {
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// PagingConfig holds the page size and window size for paged tables.
type PagingConfig struct {
	PageSize   int `toml:"page_size"`
	WindowSize int `toml:"window_size"`
}

// CacheConfig holds the local response cache settings.
type CacheConfig struct {
	Disable   bool `toml:"disable"`
	MaxAgeSec int  `toml:"max_age_sec"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultIntervalType string `toml:"default_interval_type"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:    "http://localhost:8000/expenseapp",
			TimeoutSec: 10,
		},
		Paging: PagingConfig{
			PageSize:   DefaultPageSize,
			WindowSize: DefaultPageWindow,
		},
		Cache: CacheConfig{
			MaxAgeSec: 60,
		},
		General: GeneralConfig{
			DefaultIntervalType: "month",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bettero")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bettero")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory, holding the token/cache
// database and the diagnostic log.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bettero")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "bettero")
}

// StorePath returns the path of the local sqlite store.
func StorePath() string {
	return filepath.Join(DataDir(), "bettero.db")
}

// LogPath returns the path of the diagnostic log file.
func LogPath() string {
	return filepath.Join(DataDir(), "bettero.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory and BETTERO_* environment variables
// override the file.
func Load() (Config, error) {
	cfg := DefaultConfig()

	// Deployment overrides may live in a .env next to the binary.
	_ = godotenv.Load()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if url := os.Getenv("BETTERO_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if theme := os.Getenv("BETTERO_THEME"); theme != "" {
		cfg.Appearance.Theme = theme
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.TimeoutSec) * time.Second
}

// MaxAge returns the cache freshness bound as a duration.
func (c CacheConfig) MaxAge() time.Duration {
	if c.MaxAgeSec <= 0 {
		return time.Minute
	}
	return time.Duration(c.MaxAgeSec) * time.Second
}
