package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chinaid/pkg/config"
)

type testConfig struct {
	Name    string   `env:"TEST_CFG_NAME" envDefault:"default"`
	Port    int      `env:"TEST_CFG_PORT" envDefault:"80"`
	Tags    []string `env:"TEST_CFG_TAGS" envSeparator:","`
	Quoted  string   `env:"TEST_CFG_QUOTED"`
	Enabled bool     `env:"TEST_CFG_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_SECRET,required"`
}

type otherConfig struct {
	Name string `env:"TEST_CFG_OTHER" envDefault:"other"`
}

// Tests in this file share process-wide state and do not run in parallel.

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CFG_NAME", "from-env")
	t.Setenv("TEST_CFG_PORT", "1234")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 1234, cfg.Port)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg otherConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "other", cfg.Name)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CFG_NAME", "first")

	var first testConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CFG_NAME", "second")
	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	var reloaded testConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})

	t.Setenv("TEST_CFG_SECRET", "s3cret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	// Register the variables so t.Setenv restores them after LoadEnv overrides.
	t.Setenv("TEST_CFG_NAME", "")
	t.Setenv("TEST_CFG_PORT", "")
	t.Setenv("TEST_CFG_TAGS", "")
	t.Setenv("TEST_CFG_QUOTED", "")

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "override", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/does-not-exist.env")
	})
}
