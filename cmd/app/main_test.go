package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/config"
)

func setupEnv(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	for _, key := range []string{
		config.EnvEnvironment, config.EnvLogLevel, config.EnvLogFormat, config.EnvServiceName,
		config.EnvVersion, config.EnvInventoryPath, config.EnvDays, config.EnvMetricsPath,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv(config.EnvLogLevel, "error")
}

func TestRun_DefaultFixture(t *testing.T) {
	setupEnv(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), nil, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "-------- day 0 --------\nname, sellIn, quality\n"))
	assert.Contains(t, text, "-------- day 2 --------")
	assert.NotContains(t, text, "-------- day 3 --------")
	assert.Contains(t, text, "Conjured Mana Cake, 1, 2\n")
}

func TestRun_PositionalDays(t *testing.T) {
	setupEnv(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"5"}, &out))

	assert.Contains(t, out.String(), "-------- day 5 --------")
	assert.Contains(t, out.String(), "Aged Brie, -3, 8\n")
}

func TestRun_InventoryFileAndMetrics(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	inventory := filepath.Join(dir, "inventory.json")
	require.NoError(t, os.WriteFile(inventory, []byte(`{
		"version": "1.0",
		"items": [
			{"name": "Backstage passes to a TAFKAL80ETC concert", "sell_in": 1, "quality": 30},
			{"name": "Sulfuras, Hand of Ragnaros", "sell_in": 0, "quality": 80}
		]
	}`), 0o644))
	metricsPath := filepath.Join(dir, "run.prom")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-days", "2", "-inventory", inventory, "-metrics-out", metricsPath}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Backstage passes to a TAFKAL80ETC concert, 0, 33\n")
	assert.Contains(t, out.String(), "Backstage passes to a TAFKAL80ETC concert, -1, 0\n")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gilded_rose_days_advanced_total")
}

func TestRun_DaysFromEnvironment(t *testing.T) {
	setupEnv(t)
	t.Setenv(config.EnvDays, "0")
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), nil, &out))
	assert.NotContains(t, out.String(), "-------- day 1 --------")
}

func TestRun_Errors(t *testing.T) {
	t.Run("negative days", func(t *testing.T) {
		setupEnv(t)
		err := run(context.Background(), []string{"-days", "-1"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("bad positional days", func(t *testing.T) {
		setupEnv(t)
		err := run(context.Background(), []string{"soon"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "invalid days argument")
	})

	t.Run("missing inventory", func(t *testing.T) {
		setupEnv(t)
		err := run(context.Background(), []string{"-inventory", filepath.Join(t.TempDir(), "none.json")}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to load inventory")
	})

	t.Run("cancelled context", func(t *testing.T) {
		setupEnv(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := run(ctx, []string{"3"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoggerConfig(t *testing.T) {
	t.Run("development adds source", func(t *testing.T) {
		cfg := &config.Config{Environment: "dev", LogLevel: "warn", LogFormat: "json", ServiceName: "shop", Version: "1.2.3"}
		lc := loggerConfig(cfg)
		assert.True(t, lc.AddSource)
		assert.Equal(t, "warn", lc.Level)
		assert.True(t, lc.IsJSON())
		assert.Equal(t, "shop", lc.ServiceName)
		assert.Equal(t, "1.2.3", lc.Version)
	})

	t.Run("production omits source", func(t *testing.T) {
		cfg := &config.Config{Environment: "prod", LogLevel: "info", LogFormat: "text"}
		lc := loggerConfig(cfg)
		assert.False(t, lc.AddSource)
		assert.False(t, lc.IsJSON())
		assert.Equal(t, "prod", lc.Environment)
	})
}

func TestRun_LogsConfigurationWarnings(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvMetricsPath, filepath.Join(dir, "run.txt"))

	stderr, err := os.Create(filepath.Join(dir, "stderr.log"))
	require.NoError(t, err)
	previous := os.Stderr
	os.Stderr = stderr
	t.Cleanup(func() {
		os.Stderr = previous
		stderr.Close()
	})

	require.NoError(t, run(context.Background(), []string{"0"}, &bytes.Buffer{}))

	logged, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Contains(t, string(logged), LogMsgConfigWarning)
	assert.NotContains(t, string(logged), LogMsgRunFinished, "debug messages are filtered at warn")
}
