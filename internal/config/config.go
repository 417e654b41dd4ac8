package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"calkit/internal/calendar"
	"calkit/internal/touch"
)

// EnvConfigPath names the environment variable holding an explicit config file path.
// Both tools own their argument grammar, so the path cannot come from a flag.
const EnvConfigPath = "CALKIT_CONFIG"

type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Touch    TouchConfig    `mapstructure:"touch"`
	Log      LogConfig      `mapstructure:"log"`
}

type CalendarConfig struct {
	Locale         string `mapstructure:"locale"`          // name table: "ru" or "en"
	HighlightToday string `mapstructure:"highlight_today"` // "auto", "always", "never"
}

type TouchConfig struct {
	TimeLayouts []string `mapstructure:"time_layouts"` // Go layouts tried in order for --time
}

type LogConfig struct {
	Level        string `mapstructure:"level"`         // "debug", "info", "warn", "error"
	FilePath     string `mapstructure:"file_path"`     // Rotated log file, empty to disable
	Console      bool   `mapstructure:"console"`       // Also log to stderr
	RotationTime string `mapstructure:"rotation_time"` // Time-based rotation interval (e.g., "24h")
	MaxSize      int    `mapstructure:"max_size"`      // Maximum size in megabytes before rotation
	MaxBackups   int    `mapstructure:"max_backups"`   // Maximum number of old log files to retain
	MaxAge       int    `mapstructure:"max_age"`       // Maximum number of days to retain old log files
	Compress     bool   `mapstructure:"compress"`      // Whether to compress rotated log files
}

// Validate checks the calendar section
func (c *CalendarConfig) Validate() error {
	if _, err := calendar.LookupNames(c.Locale); err != nil {
		return fmt.Errorf("calendar.locale: %w", err)
	}
	switch c.HighlightToday {
	case calendar.HighlightAuto, calendar.HighlightAlways, calendar.HighlightNever:
	default:
		return fmt.Errorf("calendar.highlight_today must be 'auto', 'always' or 'never', got '%s'", c.HighlightToday)
	}
	return nil
}

// ApplyDefaults fills unset calendar values
func (c *CalendarConfig) ApplyDefaults() {
	if c.Locale == "" {
		c.Locale = "ru"
	}
	if c.HighlightToday == "" {
		c.HighlightToday = calendar.HighlightAuto
	}
}

// ApplyDefaults restores the built-in layouts when none are configured
func (c *TouchConfig) ApplyDefaults() {
	if len(c.TimeLayouts) == 0 {
		c.TimeLayouts = append([]string(nil), touch.DefaultTimeLayouts...)
	}
}

// Validate rejects empty layouts
func (c *TouchConfig) Validate() error {
	for i, layout := range c.TimeLayouts {
		if layout == "" {
			return fmt.Errorf("touch.time_layouts[%d] is empty", i)
		}
	}
	return nil
}

// Validate checks the log section
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Level)
	}
	if c.RotationTime != "" {
		if _, err := time.ParseDuration(c.RotationTime); err != nil {
			return fmt.Errorf("invalid log.rotation_time: %w", err)
		}
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return fmt.Errorf("log.max_size, log.max_backups and log.max_age must be non-negative")
	}
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Calendar.Validate(); err != nil {
		return err
	}
	if err := c.Touch.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Load reads configuration from configPath, or from the first config.yaml found next to the
// executable or in $HOME/.calkit when configPath is empty. A missing config file is not an error.
// The working directory is not searched: the tools run anywhere, and a config.yaml there
// usually belongs to something else.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}

	if configPath != "" {
		// an explicit path must exist; only the search path may come up empty
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")

		if execPath, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(execPath))
		}

		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".calkit"))
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if locale := os.Getenv("CALKIT_LOCALE"); locale != "" {
		cfg.Calendar.Locale = locale
	}
	if level := os.Getenv("CALKIT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	cfg.Calendar.ApplyDefaults()
	cfg.Touch.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.FilePath != "" && !filepath.IsAbs(cfg.Log.FilePath) {
		if abs, err := filepath.Abs(cfg.Log.FilePath); err == nil {
			cfg.Log.FilePath = abs
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.locale", "ru")
	v.SetDefault("calendar.highlight_today", calendar.HighlightAuto)

	v.SetDefault("touch.time_layouts", touch.DefaultTimeLayouts)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file_path", "")
	v.SetDefault("log.console", false)
	v.SetDefault("log.rotation_time", "24h")
	v.SetDefault("log.max_size", 10)   // 10MB
	v.SetDefault("log.max_backups", 3) // Keep 3 old log files
	v.SetDefault("log.max_age", 28)    // Keep logs for 28 days
	v.SetDefault("log.compress", true)
}
