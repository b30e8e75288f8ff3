package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/pkg/restree"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "localekit.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("reads the YAML file over defaults", func(t *testing.T) {
		p := writeConfig(t, `
locales_dir: i18n
baseline: en
concurrency: 4
usage:
  keys: ["nav.home", "pricing.*"]
  deny: [workflows]
fill:
  sections: [faq]
log:
  level: debug
`)
		cfg, err := config.Load(p)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		require.Equal(t, "i18n", cfg.LocalesDir)
		require.Equal(t, "common", cfg.Namespace)
		require.Equal(t, "en", cfg.Baseline)
		require.Equal(t, 4, cfg.Concurrency)
		require.Equal(t, []string{"faq"}, cfg.Fill.Sections)
		require.Equal(t, slog.LevelDebug, cfg.LoggerConfig().Level)

		spec, err := cfg.UsageSpec()
		require.NoError(t, err)
		require.True(t, spec.IsUsed(restree.ParseKeyPath("pricing.plans.pro")))

		deny, err := cfg.DenySpec()
		require.NoError(t, err)
		require.True(t, deny.IsDenied(restree.ParseKeyPath("workflows.a")))
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		p := writeConfig(t, "baseline: en\n")
		t.Setenv("LOCALEKIT_BASELINE", "de")
		t.Setenv("LOCALEKIT_CONCURRENCY", "3")
		t.Setenv("LOCALEKIT_USED_KEYS", "a.*, b ,,c")

		cfg, err := config.Load(p)
		require.NoError(t, err)
		require.Equal(t, "de", cfg.Baseline)
		require.Equal(t, 3, cfg.Concurrency)
		require.Equal(t, []string{"a.*", "b", "c"}, cfg.Usage.Keys)
	})

	t.Run("rejects a bad concurrency variable", func(t *testing.T) {
		t.Setenv("LOCALEKIT_CONCURRENCY", "many")
		_, err := config.Load(writeConfig(t, ""))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "usage: [oops"))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("reads .env from the working directory", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("LOCALEKIT_REPORT_DIR=out/missing\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("LOCALEKIT_REPORT_DIR") })

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, "out/missing", cfg.ReportDir)
	})

	t.Run("rejects a malformed .env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("LOCALEKIT_BASELINE=\"de\n"), 0o600))

		_, err := config.Load("")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty dir", func(c *config.Config) { c.LocalesDir = "" }},
		{"empty baseline", func(c *config.Config) { c.Baseline = "" }},
		{"invalid baseline", func(c *config.Config) { c.Baseline = "not a tag" }},
		{"unknown format", func(c *config.Config) { c.Format = "toml" }},
		{"zero concurrency", func(c *config.Config) { c.Concurrency = 0 }},
		{"bad usage pattern", func(c *config.Config) { c.Usage.Keys = []string{"a..b"} }},
		{"bad deny entry", func(c *config.Config) { c.Usage.Deny = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	require.NoError(t, config.Default().Validate())
}
