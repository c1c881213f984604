package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"teletext/internal/domain"
	"teletext/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int             `toml:"version"`
	InitialPage string          `toml:"initial_page"`
	LogFile     string          `toml:"log_file"`
	Debug       bool            `toml:"debug"`
	Display     DisplaySettings `toml:"display"`
	Fetch       FetchSettings   `toml:"fetch"`
	Cache       CacheSettings   `toml:"cache"`
	Storage     StorageSettings `toml:"storage"`
	Favorites   []string        `toml:"favorites"` // seed for slots 1..9,0
}

// DisplaySettings controls page composition
type DisplaySettings struct {
	Alignment  string `toml:"alignment"` // left, center or justify
	FullScreen bool   `toml:"full_screen"`
}

// FetchSettings selects the page source. An empty BaseURL uses the built-in catalog.
type FetchSettings struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
	Latency Duration `toml:"latency"` // artificial delay for the built-in catalog
}

// CacheSettings holds the freshness thresholds per content type
type CacheSettings struct {
	News    Duration `toml:"news"`
	Sport   Duration `toml:"sport"`
	Markets Duration `toml:"markets"`
	Weather Duration `toml:"weather"`
	Default Duration `toml:"default"`
}

// StorageSettings locates persistent state
type StorageSettings struct {
	FavoritesDB string `toml:"favorites_db"`
}

// Duration is a time.Duration that reads and writes as "5m", "30s" etc.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Thresholds returns the cache thresholds keyed by content type.
// domain.ContentNone carries the default.
func (c CacheSettings) Thresholds() map[domain.ContentType]time.Duration {
	return map[domain.ContentType]time.Duration{
		domain.ContentNews:    c.News.Duration,
		domain.ContentSport:   c.Sport.Duration,
		domain.ContentMarkets: c.Markets.Duration,
		domain.ContentWeather: c.Weather.Duration,
		domain.ContentNone:    c.Default.Duration,
	}
}

// FavoritesTable maps the seed list onto the ten favorite slots
func (c *Config) FavoritesTable() [10]string {
	var table [10]string
	for i, id := range c.Favorites {
		if i >= len(table) {
			break
		}
		table[i] = id
	}
	return table
}

// Validate checks values that can't be repaired by defaults
func (c *Config) Validate() error {
	var errs []error
	if !domain.ValidPageID(c.InitialPage) {
		errs = append(errs, fmt.Errorf("initial_page: %w", domain.ErrInvalidPageID))
	}
	switch c.Display.Alignment {
	case "left", "center", "justify":
	default:
		errs = append(errs, fmt.Errorf("display.alignment: unknown alignment %q", c.Display.Alignment))
	}
	for i, id := range c.Favorites {
		if id != "" && !domain.ValidPageID(id) {
			errs = append(errs, fmt.Errorf("favorites[%d]: %w", i, domain.ErrInvalidPageID))
		}
	}
	return errors.Join(errs...)
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
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the teletext config directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "teletext")
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(DefaultDir(), "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service for path with event bus support.
// An empty path selects the default config file.
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys take
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// applyDefaults fills zero values a partial file may have reset
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.InitialPage == "" {
		c.InitialPage = def.InitialPage
	}
	if c.Display.Alignment == "" {
		c.Display.Alignment = def.Display.Alignment
	}
	if c.Fetch.Timeout.Duration <= 0 {
		c.Fetch.Timeout = def.Fetch.Timeout
	}
	for _, d := range []struct{ dst, src *Duration }{
		{&c.Cache.News, &def.Cache.News},
		{&c.Cache.Sport, &def.Cache.Sport},
		{&c.Cache.Markets, &def.Cache.Markets},
		{&c.Cache.Weather, &def.Cache.Weather},
		{&c.Cache.Default, &def.Cache.Default},
	} {
		if d.dst.Duration <= 0 {
			*d.dst = *d.src
		}
	}
	if c.Storage.FavoritesDB == "" {
		c.Storage.FavoritesDB = def.Storage.FavoritesDB
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version:     1,
		InitialPage: domain.IndexPageID,
		LogFile:     "teletext.log",
		Display: DisplaySettings{
			Alignment:  "left",
			FullScreen: true,
		},
		Fetch: FetchSettings{
			Timeout: Duration{10 * time.Second},
		},
		Cache: CacheSettings{
			News:    Duration{5 * time.Minute},
			Sport:   Duration{2 * time.Minute},
			Markets: Duration{5 * time.Minute},
			Weather: Duration{30 * time.Minute},
			Default: Duration{10 * time.Minute},
		},
		Storage: StorageSettings{
			FavoritesDB: filepath.Join(dir, "favorites.db"),
		},
		Favorites: []string{"200", "300", "400", "450", "500", "600", "700", "800"},
	}
}
