package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectbox/internal/eventbus"
)

// Config represents the widget defaults configuration
type Config struct {
	Version int `toml:"version"`

	// OptionHeight is the assumed row height before the first measurement
	OptionHeight int `toml:"option_height"`

	// MaxVisibleOptions caps how many option rows render before the list
	// becomes scrollable
	MaxVisibleOptions int `toml:"max_visible_options"`

	// UseNativeThreshold switches a widget to the platform-native control
	// when its option count reaches this value; zero disables
	UseNativeThreshold int `toml:"use_native_threshold"`

	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatusBar  bool `toml:"show_status_bar"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
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

	selectboxDir := filepath.Join(configDir, "selectbox")
	os.MkdirAll(selectboxDir, 0755)

	return &configService{
		filePath: filepath.Join(selectboxDir, "selectbox.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
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

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Zero geometry would collapse the option list; fall back to defaults
	if cfg.OptionHeight <= 0 {
		cfg.OptionHeight = DefaultConfig().OptionHeight
	}
	if cfg.MaxVisibleOptions <= 0 {
		cfg.MaxVisibleOptions = DefaultConfig().MaxVisibleOptions
	}

	return &cfg, nil
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

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			OptionHeight:      cfg.OptionHeight,
			MaxVisibleOptions: cfg.MaxVisibleOptions,
		})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:            1,
		OptionHeight:       1,
		MaxVisibleOptions:  8,
		UseNativeThreshold: 0,
		UISettings: UISettings{
			ShowStatusBar:  true,
			AutosaveOnExit: true,
		},
	}
}
