package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/username/workday-calendar/internal/calendar"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	WorkWindow WorkWindowConfig `mapstructure:"work_window"`
	Holidays   HolidaysConfig   `mapstructure:"holidays"`
	Log        LogConfig        `mapstructure:"log"`
}

// WorkWindowConfig represents the daily working interval
type WorkWindowConfig struct {
	Start calendar.TimeOfDay `mapstructure:"start"`
	Stop  calendar.TimeOfDay `mapstructure:"stop"`
}

// HolidaysConfig represents holiday sources
type HolidaysConfig struct {
	Specific  []string       `mapstructure:"specific"`  // YYYY-MM-DD
	Recurring []string       `mapstructure:"recurring"` // MM-DD
	Files     []string       `mapstructure:"files"`
	Preset    PresetConfig   `mapstructure:"preset"`
	IsDayOff  IsDayOffConfig `mapstructure:"isdayoff"`
}

// PresetConfig selects built-in national holidays
type PresetConfig struct {
	Country  string `mapstructure:"country"` // "no", "us", "gb"; empty disables
	FromYear int    `mapstructure:"from_year"`
	ToYear   int    `mapstructure:"to_year"`
}

// IsDayOffConfig enables the isdayoff.ru holiday API
type IsDayOffConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BaseURL  string `mapstructure:"base_url"`
	Country  string `mapstructure:"country"`
	FromYear int    `mapstructure:"from_year"`
	ToYear   int    `mapstructure:"to_year"`
	Optional bool   `mapstructure:"optional"` // keep going when the API is unreachable
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file is found:
// an 08:00-16:00 window and no holidays
func Default() *Config {
	return &Config{
		WorkWindow: WorkWindowConfig{
			Start: calendar.NewTimeOfDay(8, 0),
			Stop:  calendar.NewTimeOfDay(16, 0),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load loads configuration from file. An empty path searches the default
// locations and falls back to Default when no file exists there.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("work_window.start", "08:00")
	v.SetDefault("work_window.stop", "16:00")
	v.SetDefault("log.level", "info")
	v.SetDefault("holidays.isdayoff.optional", true)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-calendar")
		v.AddConfigPath("/etc/workday-calendar")
	}

	// Read environment variables, e.g. WORKDAY_WORK_WINDOW_START
	v.SetEnvPrefix("workday")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeOfDayHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// timeOfDayHook decodes "HH:MM" strings into calendar.TimeOfDay
func timeOfDayHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(calendar.TimeOfDay(0)) {
			return data, nil
		}
		return calendar.ParseTimeOfDay(data.(string))
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate work window
	if _, err := calendar.NewWindow(c.WorkWindow.Start, c.WorkWindow.Stop); err != nil {
		return fmt.Errorf("work_window: %w", err)
	}

	// Validate holidays
	for _, d := range c.Holidays.Specific {
		if _, err := calendar.ParseDate(d); err != nil {
			return fmt.Errorf("holidays.specific: %w", err)
		}
	}
	for _, d := range c.Holidays.Recurring {
		if _, err := calendar.ParseMonthDay(d); err != nil {
			return fmt.Errorf("holidays.recurring: %w", err)
		}
	}
	if c.Holidays.Preset.Country != "" {
		if err := validateYears(c.Holidays.Preset.FromYear, c.Holidays.Preset.ToYear); err != nil {
			return fmt.Errorf("holidays.preset: %w", err)
		}
	}
	if c.Holidays.IsDayOff.Enabled {
		if err := validateYears(c.Holidays.IsDayOff.FromYear, c.Holidays.IsDayOff.ToYear); err != nil {
			return fmt.Errorf("holidays.isdayoff: %w", err)
		}
	}

	// Validate log level
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Calendar returns a calendar with this work window and no holidays
func (c *WorkWindowConfig) Calendar() (calendar.Calendar, error) {
	return calendar.New(c.Start, c.Stop)
}

// GetLevel returns the log level, defaulting to info
func (c *LogConfig) GetLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func validateYears(from, to int) error {
	if from <= 0 || to <= 0 {
		return fmt.Errorf("from_year and to_year are required")
	}
	if from > to {
		return fmt.Errorf("from_year %d must not be after to_year %d", from, to)
	}
	return nil
}
