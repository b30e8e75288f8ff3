// Package config loads localekit settings from a YAML file, a .env file and the environment.
//
// Precedence, lowest first: built-in defaults, the YAML file, LOCALEKIT_* environment
// variables (a .env file in the working directory is loaded into the environment first),
// then command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localekit/pkg/locales"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/usage"
)

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = "localekit.yaml"

// ErrInvalidConfig is returned when a setting fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every localekit setting.
type Config struct {
	LocalesDir  string              `yaml:"locales_dir"`
	Namespace   string              `yaml:"namespace"`
	Baseline    string              `yaml:"baseline"`
	Reference   string              `yaml:"reference"`
	Format      string              `yaml:"format"`
	Concurrency int                 `yaml:"concurrency"`
	ReportDir   string              `yaml:"report_dir"`
	Usage       UsageConfig         `yaml:"usage"`
	Fill        FillConfig          `yaml:"fill"`
	Log         LogConfig           `yaml:"log"`
	Sentry      logger.SentryConfig `yaml:"sentry"`
}

// UsageConfig is the externally supplied allowlist and deny list.
type UsageConfig struct {
	Keys []string `yaml:"keys"`
	Deny []string `yaml:"deny"`
}

// FillConfig lists the top-level sections copied from the baseline into locales lacking them.
type FillConfig struct {
	Sections []string `yaml:"sections"`
}

// LogConfig controls console logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LocalesDir:  "locales",
		Namespace:   locales.DefaultNamespace,
		Baseline:    "zh",
		Reference:   "en",
		Format:      string(locales.FormatJSON),
		Concurrency: 1,
		Log:         LogConfig{Level: "info", Format: string(logger.FormatText)},
	}
}

// Load builds the configuration. An explicit path must exist; with an empty path
// DefaultFile is read only if present.
func Load(path string) (Config, error) {
	cfg := Default()

	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: loading .env: %s", ErrInvalidConfig, err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parsing %q: %s", ErrInvalidConfig, path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(name string, dst *[]string) {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*dst = splitList(v)
		}
	}

	str("LOCALEKIT_DIR", &c.LocalesDir)
	str("LOCALEKIT_NAMESPACE", &c.Namespace)
	str("LOCALEKIT_BASELINE", &c.Baseline)
	str("LOCALEKIT_REFERENCE", &c.Reference)
	str("LOCALEKIT_FORMAT", &c.Format)
	str("LOCALEKIT_REPORT_DIR", &c.ReportDir)
	str("LOCALEKIT_LOG_LEVEL", &c.Log.Level)
	str("LOCALEKIT_LOG_FORMAT", &c.Log.Format)
	str("SENTRY_DSN", &c.Sentry.DSN)
	str("SENTRY_ENVIRONMENT", &c.Sentry.Environment)
	list("LOCALEKIT_USED_KEYS", &c.Usage.Keys)
	list("LOCALEKIT_DENY", &c.Usage.Deny)
	list("LOCALEKIT_FILL_SECTIONS", &c.Fill.Sections)

	if v, ok := lookup("LOCALEKIT_CONCURRENCY"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: LOCALEKIT_CONCURRENCY: %s", ErrInvalidConfig, err)
		}
		c.Concurrency = n
	}
	return nil
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks every setting and the usage patterns.
func (c Config) Validate() error {
	if c.LocalesDir == "" {
		return fmt.Errorf("%w: locales_dir is required", ErrInvalidConfig)
	}
	if c.Baseline == "" {
		return fmt.Errorf("%w: baseline is required", ErrInvalidConfig)
	}
	if _, err := locales.ParseLocale(c.Baseline); err != nil {
		return fmt.Errorf("%w: baseline: %w", ErrInvalidConfig, err)
	}
	if _, err := locales.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if _, err := c.UsageSpec(); err != nil {
		return fmt.Errorf("%w: usage.keys: %w", ErrInvalidConfig, err)
	}
	if _, err := c.DenySpec(); err != nil {
		return fmt.Errorf("%w: usage.deny: %w", ErrInvalidConfig, err)
	}
	return nil
}

// UsageSpec builds the allowlist.
func (c Config) UsageSpec() (*usage.Spec, error) {
	return usage.NewSpec(c.Usage.Keys...)
}

// DenySpec builds the deny list.
func (c Config) DenySpec() (*usage.Deny, error) {
	return usage.NewDeny(c.Usage.Deny...)
}

// LoggerConfig maps the log settings to a logger.Config.
func (c Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.Format(strings.ToLower(c.Log.Format)),
	}
}
