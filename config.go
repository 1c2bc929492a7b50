package pomomo

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DatabaseURLKey         = "POMOMO_DB_PATH"
	ConfigPathKey          = "POMOMO_CONFIG"
	WorkMinutesKey         = "POMOMO_WORK_MINUTES"
	ShortBreakMinutesKey   = "POMOMO_SHORT_BREAK_MINUTES"
	LongBreakMinutesKey    = "POMOMO_LONG_BREAK_MINUTES"
	IntervalsKey           = "POMOMO_INTERVALS"
	FontKey                = "POMOMO_FONT"
	ColourKey              = "POMOMO_COLOUR"
	DiscordWebhookIDKey    = "POMOMO_DISCORD_WEBHOOK_ID"
	DiscordWebhookTokenKey = "POMOMO_DISCORD_WEBHOOK_TOKEN"
)

type Config struct {
	DatabaseURL string
	Durations   Durations
	Intervals   int
	Theme       Theme

	DiscordWebhookID    string
	DiscordWebhookToken string
}

func DefaultConfig() Config {
	return Config{
		DatabaseURL: "pomomo.db",
		Durations:   DefaultDurations(),
		Intervals:   DefaultIntervals,
		Theme:       DefaultTheme(),
	}
}

type yamlConfig struct {
	Database          string `yaml:"database"`
	WorkMinutes       int    `yaml:"work_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	Intervals         int    `yaml:"intervals"`
	Font              string `yaml:"font"`
	Colour            string `yaml:"colour"`
}

// LoadConfig resolves startup settings. Precedence, lowest first: defaults,
// the YAML file at path (or $POMOMO_CONFIG), then environment variables
// (including those loaded from envFiles). A missing YAML file is not an error.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigPathKey)
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Durations.Validate(); err != nil {
		return Config{}, err
	}
	if err := IntervalsIntOption.Check(cfg.Intervals); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if y.Database != "" {
		c.DatabaseURL = y.Database
	}
	if y.WorkMinutes != 0 {
		c.Durations.Work = y.WorkMinutes
	}
	if y.ShortBreakMinutes != 0 {
		c.Durations.ShortBreak = y.ShortBreakMinutes
	}
	if y.LongBreakMinutes != 0 {
		c.Durations.LongBreak = y.LongBreakMinutes
	}
	if y.Intervals != 0 {
		c.Intervals = y.Intervals
	}
	if y.Font != "" {
		f, err := ParseFont(y.Font)
		if err != nil {
			return err
		}
		c.Theme.Font = f
	}
	if y.Colour != "" {
		col, err := ParseColour(y.Colour)
		if err != nil {
			return err
		}
		c.Theme.Colour = col
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(DatabaseURLKey); v != "" {
		c.DatabaseURL = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{WorkMinutesKey, &c.Durations.Work},
		{ShortBreakMinutesKey, &c.Durations.ShortBreak},
		{LongBreakMinutesKey, &c.Durations.LongBreak},
		{IntervalsKey, &c.Intervals},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("environment variable %s: %w", i.key, err)
		}
		*i.dst = n
	}
	if v := os.Getenv(FontKey); v != "" {
		f, err := ParseFont(v)
		if err != nil {
			return err
		}
		c.Theme.Font = f
	}
	if v := os.Getenv(ColourKey); v != "" {
		col, err := ParseColour(v)
		if err != nil {
			return err
		}
		c.Theme.Colour = col
	}
	c.DiscordWebhookID = os.Getenv(DiscordWebhookIDKey)
	c.DiscordWebhookToken = os.Getenv(DiscordWebhookTokenKey)
	return nil
}

func (c Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}
