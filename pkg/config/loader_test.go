package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/localization-service/pkg/config"
)

type testConfig struct {
	Name  string `env:"TEST_SERVICE_NAME" envDefault:"fallback-name"`
	Port  int    `env:"TEST_SERVICE_PORT" envDefault:"8080"`
	Debug bool   `env:"TEST_SERVICE_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoadDefaults(t *testing.T) {
	config.ResetCache()

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "fallback-name", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	config.ResetCache()

	t.Setenv("TEST_SERVICE_NAME", "localization")
	t.Setenv("TEST_SERVICE_PORT", "5007")
	t.Setenv("TEST_SERVICE_DEBUG", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "localization", cfg.Name)
	assert.Equal(t, 5007, cfg.Port)
	assert.True(t, cfg.Debug)
}

func TestLoadCachesPerType(t *testing.T) {
	config.ResetCache()

	t.Setenv("TEST_SERVICE_NAME", "first")

	var first testConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Name)

	// The cached copy wins even after the environment changes.
	t.Setenv("TEST_SERVICE_NAME", "second")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoadNilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadMissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
