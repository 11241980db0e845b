// Package config loads pullmenu settings from a config file, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pullmenu/internal/gesture"
	"pullmenu/internal/swipe"
)

// EnvPrefix prefixes environment overrides, e.g. PULLMENU_THEME_RADIUS.
const EnvPrefix = "PULLMENU"

// DefaultLatency is how long the demo pretends a selected action runs.
const DefaultLatency = 1500 * time.Millisecond

// Config holds application configuration.
type Config struct {
	// Theme holds only the theme keys that were actually set.
	Theme   swipe.Config
	Gesture gesture.Config
	LogFile string
	Latency time.Duration
}

// Options select where configuration is read from.
type Options struct {
	// Path names a config file. Empty uses $PULLMENU_CONFIG, then
	// $HOME/.config/pullmenu/config.{yaml,toml,json}.
	Path string
	// Flags, if set, override file and environment values for the flags
	// the user changed.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"threshold": "gesture.threshold",
	"log-file":  "log.file",
	"latency":   "demo.latency",
}

// Load reads configuration from file, env and flags. A missing config file
// is not an error unless it was named explicitly.
func Load(opts Options) (Config, error) {
	v := viper.New()

	// Theme keys get no defaults so that IsSet reports only real values.
	g := gesture.DefaultConfig()
	v.SetDefault("gesture.slop", g.Slop)
	v.SetDefault("gesture.threshold", g.Threshold)
	v.SetDefault("gesture.max_offset", g.MaxOffset)
	v.SetDefault("gesture.resistance", g.Resistance)
	v.SetDefault("log.file", "")
	v.SetDefault("demo.latency", DefaultLatency)

	path := opts.Path
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pullmenu"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Theme: theme(v),
		Gesture: gesture.Config{
			Slop:       v.GetInt("gesture.slop"),
			Threshold:  v.GetInt("gesture.threshold"),
			MaxOffset:  v.GetInt("gesture.max_offset"),
			Resistance: v.GetFloat64("gesture.resistance"),
		},
		LogFile: v.GetString("log.file"),
		Latency: v.GetDuration("demo.latency"),
	}, nil
}

// theme converts the theme keys that are set into a swipe.Config.
func theme(v *viper.Viper) swipe.Config {
	c := swipe.NewConfig()
	if v.IsSet("theme.icons") {
		for _, icon := range v.GetStringSlice("theme.icons") {
			c = c.AddIcon(icon)
		}
	}
	if v.IsSet("theme.background_pattern") {
		c = c.WithBackground(v.GetString("theme.background_pattern"))
	}
	if v.IsSet("theme.background_color") {
		c = c.WithBackgroundColor(v.GetString("theme.background_color"))
	}
	if v.IsSet("theme.circle_color") {
		c = c.WithCircleColor(v.GetString("theme.circle_color"))
	}
	if v.IsSet("theme.radius") {
		c = c.WithRadius(v.GetInt("theme.radius"))
	}
	if v.IsSet("theme.gap") {
		c = c.WithGap(v.GetInt("theme.gap"))
	}
	if v.IsSet("theme.collapse_duration") {
		c = c.WithCollapseDuration(v.GetInt("theme.collapse_duration"))
	}
	if v.IsSet("theme.ripple_duration") {
		c = c.WithRippleDuration(v.GetInt("theme.ripple_duration"))
	}
	if v.IsSet("theme.gummy_duration") {
		c = c.WithGummyDuration(v.GetInt("theme.gummy_duration"))
	}
	return c
}
