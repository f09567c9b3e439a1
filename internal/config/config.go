package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete FlowSync configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// AltScreen runs the dashboard in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
	// ShowFullHelp expands the help line into the full key map on start
	ShowFullHelp bool `mapstructure:"show_full_help"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (default: INFO)
	Level string `mapstructure:"level"`
	// Dir is where flowsync.log is written. Empty disables logging, since
	// anything written to the terminal would draw over the dashboard.
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			AltScreen:    true,
			ShowFullHelp: false,
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Dir:   "",
		},
	}
}

// SetDefaults registers defaults with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	viper.SetDefault("tui.show_full_help", defaults.TUI.ShowFullHelp)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidLogLevels lists the accepted logging.level values
func ValidLogLevels() []string {
	return []string{"DEBUG", "INFO", "WARN", "ERROR"}
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	level := strings.ToUpper(c.Logging.Level)
	for _, valid := range ValidLogLevels() {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid logging.level %q: must be one of %s",
		c.Logging.Level, strings.Join(ValidLogLevels(), ", "))
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowsync")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "flowsync")
}
