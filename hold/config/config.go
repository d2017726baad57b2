package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/valerio/go-holdevent/hold/input"
)

// Supported backends.
const (
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
	BackendSDL2     = "sdl2"
)

var ErrUnknownBackend = errors.New("unknown backend")

// RegionConfig places a UI element on screen.
type RegionConfig struct {
	X      int `mapstructure:"x"`
	Y      int `mapstructure:"y"`
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config holds everything the demo app needs.
type Config struct {
	Backend             string       `mapstructure:"backend"`
	IntervalMS          int          `mapstructure:"interval_ms"` // 0 = tick every frame
	FrameRate           int          `mapstructure:"frame_rate"`
	Keys                []string     `mapstructure:"keys"`
	Button              RegionConfig `mapstructure:"button"`
	TextField           RegionConfig `mapstructure:"text_field"`
	KeyReleaseTimeoutMS int          `mapstructure:"key_release_timeout_ms"`
	LogLevel            string       `mapstructure:"log_level"`
	Script              string       `mapstructure:"script"`
}

// Load reads configuration from path, or from the default search paths when
// path is empty. HOLDEVENT_* environment variables override file values.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("holdevent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/holdevent")
	}

	v.SetEnvPrefix("HOLDEVENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		slog.Debug("Config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendTerminal)
	v.SetDefault("interval_ms", 0)
	v.SetDefault("frame_rate", 60)
	v.SetDefault("keys", []string{"Space"})
	v.SetDefault("button.x", 2)
	v.SetDefault("button.y", 2)
	v.SetDefault("button.width", 24)
	v.SetDefault("button.height", 5)
	v.SetDefault("text_field.x", 2)
	v.SetDefault("text_field.y", 9)
	v.SetDefault("text_field.width", 24)
	v.SetDefault("text_field.height", 3)
	v.SetDefault("key_release_timeout_ms", 500)
	v.SetDefault("log_level", "info")
	v.SetDefault("script", "")
}

// Validate checks values that cannot be clamped to something sensible.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTerminal, BackendHeadless, BackendSDL2:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	if c.IntervalMS < 0 {
		slog.Warn("Negative interval_ms, using per-frame ticks", "interval_ms", c.IntervalMS)
		c.IntervalMS = 0
	}
	if c.KeyReleaseTimeoutMS <= 0 {
		slog.Warn("key_release_timeout_ms too low, setting to 100", "value", c.KeyReleaseTimeoutMS)
		c.KeyReleaseTimeoutMS = 100
	}
	if c.Backend == BackendHeadless && c.Script == "" {
		return errors.New("headless backend requires a script")
	}
	return nil
}

// Interval returns the hold tick interval.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// KeyReleaseTimeout returns how long a key may go unseen before it counts as released.
func (c *Config) KeyReleaseTimeout() time.Duration {
	return time.Duration(c.KeyReleaseTimeoutMS) * time.Millisecond
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ButtonRegion returns the element pointer holds are bound to.
func (c *Config) ButtonRegion() input.Region {
	return input.Region{
		Name:   "hold button",
		X:      c.Button.X,
		Y:      c.Button.Y,
		Width:  c.Button.Width,
		Height: c.Button.Height,
		Kind:   input.KindButton,
	}
}

// TextFieldRegion returns the text input that suppresses keyboard holds while focused.
func (c *Config) TextFieldRegion() input.Region {
	return input.Region{
		Name:   "text field",
		X:      c.TextField.X,
		Y:      c.TextField.Y,
		Width:  c.TextField.Width,
		Height: c.TextField.Height,
		Kind:   input.KindInput,
	}
}
