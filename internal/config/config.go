package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/internal/clock"
)

// Source names accepted in calendar.sources
const (
	SourceBuiltin   = "builtin"
	SourceUSFederal = "us-federal"
	SourceFile      = "file"
	SourceICS       = "ics"
)

// Config represents application configuration
type Config struct {
	Clock      clock.State      `mapstructure:"clock"`
	Calendar   CalendarConfig   `mapstructure:"calendar"`
	Daemon     DaemonConfig     `mapstructure:"daemon"`
	State      StateConfig      `mapstructure:"state"`
	Properties PropertiesConfig `mapstructure:"properties"`
}

// CalendarConfig represents holiday source configuration
type CalendarConfig struct {
	Sources    []string `mapstructure:"sources"`     // merged in order, first name wins
	CustomFile string   `mapstructure:"custom_file"` // YAML holidays for the "file" source
	ICSFile    string   `mapstructure:"ics_file"`    // iCalendar file for the "ics" source
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	TickInterval string `mapstructure:"tick_interval"`
	Timezone     string `mapstructure:"timezone"` // IANA name, empty for the system zone
	LogFile      string `mapstructure:"log_file"`
	LogLevel     string `mapstructure:"log_level"`
	SystemTray   bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// StateConfig represents state storage configuration
type StateConfig struct {
	PositionFile string `mapstructure:"position_file"`
	PresetsFile  string `mapstructure:"presets_file"`
}

// PropertiesConfig represents host property binding
type PropertiesConfig struct {
	File string            `mapstructure:"file"` // JSON properties applied at startup
	Keys map[string]string `mapstructure:"keys"` // field -> property key overrides
}

// Load loads configuration from file. When no path is given and no config
// file is found in the search paths, defaults are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-clock")
		v.AddConfigPath("/etc/holiday-clock")
	}

	// Read environment variables, e.g. HOLIDAY_CLOCK_DAEMON_LOG_LEVEL
	v.SetEnvPrefix("holiday_clock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := Config{Clock: clock.DefaultState()}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	config := Config{Clock: clock.DefaultState()}
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("invalid config defaults: %v", err))
	}
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.sources", []string{SourceBuiltin})
	v.SetDefault("daemon.tick_interval", "1s")
	v.SetDefault("daemon.log_level", "info")
	v.SetDefault("state.position_file", "clock-position.json")
	v.SetDefault("state.presets_file", "clock-presets.json")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Clock config
	if c.Clock.TimeFormat != 12 && c.Clock.TimeFormat != 24 {
		return fmt.Errorf("clock.time_format must be 12 or 24, got %d", c.Clock.TimeFormat)
	}
	switch c.Clock.DateFormat {
	case clock.DateWords, clock.DateYMD, clock.DateMDY, clock.DateDMY, clock.DateCustom:
	default:
		return fmt.Errorf("clock.date_format must be one of words, ymd, mdy, dmy, custom, got '%s'", c.Clock.DateFormat)
	}
	if !slices.Contains(calendar.Formats(), c.Clock.HolidayFormat) {
		return fmt.Errorf("clock.holiday_format must be one of %v, got '%s'", calendar.Formats(), c.Clock.HolidayFormat)
	}

	// Validate Calendar config
	if len(c.Calendar.Sources) == 0 {
		return fmt.Errorf("calendar.sources must list at least one source")
	}
	for _, source := range c.Calendar.Sources {
		switch source {
		case SourceBuiltin, SourceUSFederal:
		case SourceFile:
			if c.Calendar.CustomFile == "" {
				return fmt.Errorf("calendar.custom_file is required for the file source")
			}
		case SourceICS:
			if c.Calendar.ICSFile == "" {
				return fmt.Errorf("calendar.ics_file is required for the ics source")
			}
		default:
			return fmt.Errorf("calendar.sources: unknown source '%s'", source)
		}
	}

	// Validate Daemon config
	if c.Daemon.TickInterval != "" {
		d, err := time.ParseDuration(c.Daemon.TickInterval)
		if err != nil {
			return fmt.Errorf("daemon.tick_interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("daemon.tick_interval must be positive")
		}
	}
	if c.Daemon.Timezone != "" {
		if _, err := time.LoadLocation(c.Daemon.Timezone); err != nil {
			return fmt.Errorf("daemon.timezone: %w", err)
		}
	}

	return nil
}

// GetTickInterval returns the clock refresh interval
func (c *DaemonConfig) GetTickInterval() time.Duration {
	if c.TickInterval == "" {
		return time.Second
	}
	duration, err := time.ParseDuration(c.TickInterval)
	if err != nil || duration <= 0 {
		return time.Second
	}
	return duration
}

// GetLocation returns the configured time zone, or the system zone
func (c *DaemonConfig) GetLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ExpandEnvVars expands environment variables in file paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.CustomFile = os.ExpandEnv(c.Calendar.CustomFile)
	c.Calendar.ICSFile = os.ExpandEnv(c.Calendar.ICSFile)
	c.Daemon.LogFile = os.ExpandEnv(c.Daemon.LogFile)
	c.State.PositionFile = os.ExpandEnv(c.State.PositionFile)
	c.State.PresetsFile = os.ExpandEnv(c.State.PresetsFile)
	c.Properties.File = os.ExpandEnv(c.Properties.File)
}
