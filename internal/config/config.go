package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "BOOKSHELF_"

// DefaultImageBaseURL is where catalog image links are resolved against
const DefaultImageBaseURL = "https://raw.githubusercontent.com/benoitvallon/100-best-books/master/static/"

var (
	// ErrInvalidPageSize is returned when the default page size is not one of 20, 50 or 100
	ErrInvalidPageSize = errors.New("default page size must be 20, 50 or 100")
	// ErrEmptySource is returned when no catalog source is configured
	ErrEmptySource = errors.New("catalog source must not be empty")
)

// Config represents the application configuration
type Config struct {
	Version       int           `toml:"version"`
	CatalogSource string        `toml:"catalog_source" env:"CATALOG_SOURCE"`
	ImageBaseURL  string        `toml:"image_base_url" env:"IMAGE_BASE_URL"`
	LoadTimeout   string        `toml:"load_timeout" env:"LOAD_TIMEOUT"`
	UISettings    UISettings    `toml:"ui" envPrefix:"UI_"`
	Cache         CacheSettings `toml:"cache" envPrefix:"CACHE_"`
	Log           LogSettings   `toml:"log" envPrefix:"LOG_"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultPageSize int  `toml:"default_page_size" env:"DEFAULT_PAGE_SIZE"`
	AltScreen       bool `toml:"alt_screen" env:"ALT_SCREEN"`
}

// CacheSettings controls memoization of derived views
type CacheSettings struct {
	Size int `toml:"size" env:"SIZE"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
	File   string `toml:"file" env:"FILE"`
}

// Timeout parses LoadTimeout, falling back to ten seconds
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.LoadTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// ImageURL resolves a catalog image link against the configured base URL
func (c *Config) ImageURL(imageLink string) string {
	if imageLink == "" {
		return ""
	}
	return c.ImageBaseURL + imageLink
}

// Validate checks the values the rest of the application relies on
func (c *Config) Validate() error {
	switch c.UISettings.DefaultPageSize {
	case 20, 50, 100:
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.UISettings.DefaultPageSize)
	}
	if c.CatalogSource == "" {
		return ErrEmptySource
	}
	return nil
}

// ApplyEnv overrides fields from a .env file and BOOKSHELF_* variables.
// A missing .env file is not an error.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "bookshelf", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the configuration file, creating it with defaults when it does
// not exist yet, then applies environment overrides.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		CatalogSource: "books.json",
		ImageBaseURL:  DefaultImageBaseURL,
		LoadTimeout:   "10s",
		UISettings: UISettings{
			DefaultPageSize: 20,
			AltScreen:       true,
		},
		Cache: CacheSettings{Size: 64},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
			File:   "bookshelf.log",
		},
	}
}
