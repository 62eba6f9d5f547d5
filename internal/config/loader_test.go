package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/country-list-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearPortEnv(t *testing.T) {
	t.Helper()
	// viper treats empty variables as unset
	t.Setenv("PORT", "")
	t.Setenv("APP_APP_PORT", "")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearPortEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, config.SourceFile, cfg.Dataset.Source)
	assert.Equal(t, "./countries.json", cfg.Dataset.Path)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_FromYAML(t *testing.T) {
	clearPortEnv(t)
	path := writeTempConfig(t, `
app:
  name: countries
  port: 18080
dataset:
  source: file
  path: /data/countries.json
logger:
  level: warn
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "countries", cfg.App.Name)
	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "/data/countries.json", cfg.Dataset.Path)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoad_PortEnvOverridesFile(t *testing.T) {
	clearPortEnv(t)
	path := writeTempConfig(t, "app:\n  port: 18080\n")
	t.Setenv("PORT", "4000")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.App.Port)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	clearPortEnv(t)
	t.Setenv("APP_DATASET_SOURCE", "postgres")
	t.Setenv("APP_DATASET_TABLE", "country_names")
	t.Setenv("APP_POSTGRES_USER", "reader")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, "country_names", cfg.Dataset.Table)
	assert.Equal(t, "reader", cfg.Postgres.User)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown_source", "dataset:\n  source: s3\n"},
		{"port_out_of_range", "app:\n  port: 70000\n"},
		{"empty_path_for_file", "dataset:\n  source: file\n  path: \"\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearPortEnv(t)
			_, err := config.Load(writeTempConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
