package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/blackwell-systems/lettergrade/internal/score"
)

// Config is the top-level lettergrade configuration.
type Config struct {
	Weights       score.Weights `mapstructure:"weights"`
	MaxInputChars int           `mapstructure:"max_input_chars" validate:"gte=0"`
	LexiconFile   string        `mapstructure:"lexicon_file"`
	Parallel      bool          `mapstructure:"parallel"`
	Scan          Scan          `mapstructure:"scan"`
	Watch         Watch         `mapstructure:"watch"`
	Output        Output        `mapstructure:"output"`
	Serve         Serve         `mapstructure:"serve"`
}

// Scan defines how letter files are discovered and scored in batch.
type Scan struct {
	Extensions  []string `mapstructure:"extensions" validate:"min=1,dive,startswith=."`
	Concurrency int      `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// Watch defines how a draft is polled for changes.
type Watch struct {
	Interval time.Duration `mapstructure:"interval" validate:"gte=100ms"`
}

// Serve defines the HTTP API listener.
type Serve struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width" validate:"gte=40,lte=240"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies LETTERGRADE_* environment overrides, and returns a validated
// Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("weights.structure", DefaultWeights.Structure)
	v.SetDefault("weights.keywords", DefaultWeights.Keywords)
	v.SetDefault("weights.personalisation", DefaultWeights.Personalisation)
	v.SetDefault("weights.action_verbs", DefaultWeights.ActionVerbs)
	v.SetDefault("weights.readability", DefaultWeights.Readability)
	v.SetDefault("max_input_chars", DefaultMaxInputChars)
	v.SetDefault("lexicon_file", "")
	v.SetDefault("parallel", false)
	v.SetDefault("scan.extensions", DefaultScan.Extensions)
	v.SetDefault("scan.concurrency", DefaultScan.Concurrency)
	v.SetDefault("watch.interval", DefaultWatch.Interval)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("serve.addr", DefaultServe.Addr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.LexiconFile = expandPath(cfg.LexiconFile)
	for i, ext := range cfg.Scan.Extensions {
		cfg.Scan.Extensions[i] = strings.ToLower(ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and that the dimension weights sum to 1.0.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
