package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/config"
)

type appDefaults struct {
	Name     string   `env:"VK_TEST_APP_NAME" envDefault:"visakit"`
	Timezone string   `env:"VK_TEST_TIMEZONE" envDefault:"Asia/Tokyo"`
	Port     int      `env:"VK_TEST_PORT" envDefault:"8080"`
	Debug    bool     `env:"VK_TEST_DEBUG" envDefault:"true"`
	Langs    []string `env:"VK_TEST_LANGS" envSeparator:"," envDefault:"ja,en"`
}

type appOverrides struct {
	Name string `env:"VK_TEST_OVERRIDE_NAME" envDefault:"visakit"`
	Port int    `env:"VK_TEST_OVERRIDE_PORT" envDefault:"8080"`
}

type cachedConfig struct {
	Value string `env:"VK_TEST_CACHED"`
}

type firstType struct {
	Value string `env:"VK_TEST_TYPE1" envDefault:"one"`
}

type secondType struct {
	Value string `env:"VK_TEST_TYPE2" envDefault:"two"`
}

type requiredConfig struct {
	Secret string `env:"VK_TEST_REQUIRED,required"`
}

type envFileConfig struct {
	Lang string `env:"VK_TEST_FILE_LANG"`
	Zone string `env:"VK_TEST_FILE_ZONE"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg appDefaults
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "visakit", cfg.Name)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"ja", "en"}, cfg.Langs)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("VK_TEST_OVERRIDE_NAME", "uns")
	t.Setenv("VK_TEST_OVERRIDE_PORT", "9090")

	var cfg appOverrides
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "uns", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("VK_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("VK_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_DifferentTypes(t *testing.T) {
	config.Reset()

	var a firstType
	var b secondType
	require.NoError(t, config.Load(&a))
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "one", a.Value)
	assert.Equal(t, "two", b.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	os.Unsetenv("VK_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("VK_TEST_REQUIRED", "set")
	require.NoError(t, config.Load(&cfg), "a failed parse is not cached")
	assert.Equal(t, "set", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *appDefaults
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	os.Unsetenv("VK_TEST_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("VK_TEST_FILE_LANG=en\nVK_TEST_FILE_ZONE=\"Asia/Tokyo\"\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("VK_TEST_FILE_LANG")
		os.Unsetenv("VK_TEST_FILE_ZONE")
	})

	require.NoError(t, config.LoadEnv(path))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "Asia/Tokyo", cfg.Zone)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
