package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DECKGRIP_LOG_LEVEL
	EnvPrefix = "DECKGRIP"

	// StorageFile keeps one TOML file per key under Storage.Path
	StorageFile = "file"
	// StorageSQLite keeps keys in a sqlite database at Storage.Path
	StorageSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	Version int           `mapstructure:"version"`
	Deck    DeckConfig    `mapstructure:"deck"`
	Timing  TimingConfig  `mapstructure:"timing"`
	Input   InputConfig   `mapstructure:"input"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// DeckConfig controls how deck files are handled
type DeckConfig struct {
	Watch bool `mapstructure:"watch"`
}

// TimingConfig holds talk timing
type TimingConfig struct {
	EstimatedDuration time.Duration `mapstructure:"estimated_duration"`
}

// InputConfig holds gesture thresholds in terminal cells
type InputConfig struct {
	MinSwipeDistance    float64       `mapstructure:"min_swipe_distance"`
	MaxVerticalDistance float64       `mapstructure:"max_vertical_distance"`
	WheelCooldown       time.Duration `mapstructure:"wheel_cooldown"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// LogConfig controls the session log file
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UIConfig holds terminal UI preferences
type UIConfig struct {
	Mouse          bool `mapstructure:"mouse"`
	StartPresenter bool `mapstructure:"start_presenter"`
	AutoStart      bool `mapstructure:"auto_start"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	dir      string
	filePath string
}

// NewConfigService creates a config service rooted in the user's config dir
func NewConfigService() ConfigService {
	return NewConfigServiceAt(Dir())
}

// NewConfigServiceAt creates a config service storing config.toml in dir
func NewConfigServiceAt(dir string) ConfigService {
	return &configService{
		dir:      dir,
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// Dir returns the deckgrip config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "deckgrip")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the default config file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	return load(cs.filePath, cs.dir, false)
}

// Save writes config to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, filepath.Dir(path), true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(toFile(config))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func load(path, dataDir string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, dataDir)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if mustExist {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	d := defaultConfigIn(dataDir)
	v.SetDefault("version", d.Version)
	v.SetDefault("deck.watch", d.Deck.Watch)
	v.SetDefault("timing.estimated_duration", d.Timing.EstimatedDuration)
	v.SetDefault("input.min_swipe_distance", d.Input.MinSwipeDistance)
	v.SetDefault("input.max_vertical_distance", d.Input.MaxVerticalDistance)
	v.SetDefault("input.wheel_cooldown", d.Input.WheelCooldown)
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.start_presenter", d.UI.StartPresenter)
	v.SetDefault("ui.auto_start", d.UI.AutoStart)
}

// Validate rejects values the rest of the program cannot use
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Timing.EstimatedDuration < time.Second {
		return fmt.Errorf("timing.estimated_duration must be at least 1s, got %s", c.Timing.EstimatedDuration)
	}
	if c.Input.WheelCooldown < 0 {
		return fmt.Errorf("input.wheel_cooldown must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return defaultConfigIn(Dir())
}

func defaultConfigIn(dir string) *Config {
	return &Config{
		Version: 1,
		Deck:    DeckConfig{Watch: true},
		Timing:  TimingConfig{EstimatedDuration: 45 * time.Minute},
		Input: InputConfig{
			MinSwipeDistance:    8,
			MaxVerticalDistance: 4,
			WheelCooldown:       500 * time.Millisecond,
		},
		Storage: StorageConfig{
			Driver: StorageFile,
			Path:   filepath.Join(dir, "state"),
		},
		Log: LogConfig{
			File:  filepath.Join(dir, "deckgrip.log"),
			Level: "info",
		},
		UI: UIConfig{Mouse: true, AutoStart: true},
	}
}

// on-disk form; durations are written the way people type them
type fileConfig struct {
	Version int `toml:"version"`
	Deck    struct {
		Watch bool `toml:"watch"`
	} `toml:"deck"`
	Timing struct {
		EstimatedDuration string `toml:"estimated_duration"`
	} `toml:"timing"`
	Input struct {
		MinSwipeDistance    float64 `toml:"min_swipe_distance"`
		MaxVerticalDistance float64 `toml:"max_vertical_distance"`
		WheelCooldown       string  `toml:"wheel_cooldown"`
	} `toml:"input"`
	Storage struct {
		Driver string `toml:"driver"`
		Path   string `toml:"path"`
	} `toml:"storage"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
	UI struct {
		Mouse          bool `toml:"mouse"`
		StartPresenter bool `toml:"start_presenter"`
		AutoStart      bool `toml:"auto_start"`
	} `toml:"ui"`
}

func toFile(c *Config) fileConfig {
	var f fileConfig
	f.Version = c.Version
	f.Deck.Watch = c.Deck.Watch
	f.Timing.EstimatedDuration = c.Timing.EstimatedDuration.String()
	f.Input.MinSwipeDistance = c.Input.MinSwipeDistance
	f.Input.MaxVerticalDistance = c.Input.MaxVerticalDistance
	f.Input.WheelCooldown = c.Input.WheelCooldown.String()
	f.Storage.Driver = c.Storage.Driver
	f.Storage.Path = c.Storage.Path
	f.Log.File = c.Log.File
	f.Log.Level = c.Log.Level
	f.UI.Mouse = c.UI.Mouse
	f.UI.StartPresenter = c.UI.StartPresenter
	f.UI.AutoStart = c.UI.AutoStart
	return f
}

// LoadOrCreate loads the config, writing the defaults on first run
func LoadOrCreate(cs ConfigService) (*Config, error) {
	if _, err := os.Stat(cs.Path()); errors.Is(err, os.ErrNotExist) {
		cfg, err := cs.Load()
		if err != nil {
			return nil, err
		}
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cs.Load()
}
