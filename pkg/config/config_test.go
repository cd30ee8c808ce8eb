package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet_ReturnsValueWhenSet(t *testing.T) {
	t.Setenv("SITEKIT_TEST_GET", "hello")

	require.Equal(t, "hello", Get("SITEKIT_TEST_GET", "fallback"))
}

func TestGet_ReturnsDefaultWhenUnset(t *testing.T) {
	require.Equal(t, "fallback", Get("SITEKIT_TEST_UNSET_GET", "fallback"))
}

func TestGet_EmptyValueIsNotUnset(t *testing.T) {
	t.Setenv("SITEKIT_TEST_EMPTY", "")

	require.Equal(t, "", Get("SITEKIT_TEST_EMPTY", "fallback"))
}

func TestRequire_ReturnsValueWhenSet(t *testing.T) {
	t.Setenv("SITEKIT_TEST_REQUIRE", "value")

	v, err := Require("SITEKIT_TEST_REQUIRE")
	require.NoError(t, err)
	require.Equal(t, "value", v)
}

func TestRequire_FailsWhenUnset(t *testing.T) {
	_, err := Require("SITEKIT_TEST_UNSET_REQUIRE")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissing)
	require.Contains(t, err.Error(), "SITEKIT_TEST_UNSET_REQUIRE")
}

func TestLoadEnv_MissingFileReturnsFalse(t *testing.T) {
	require.False(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnv_LoadsVariablesFromFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SITEKIT_TEST_DOTENV=from-file\n"), 0o644))
	t.Setenv("SITEKIT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SITEKIT_TEST_DOTENV"))

	require.True(t, LoadEnv(envFile))
	require.Equal(t, "from-file", os.Getenv("SITEKIT_TEST_DOTENV"))
}

func TestLoadEnv_DoesNotOverrideProcessEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SITEKIT_TEST_OVERRIDE=from-file\n"), 0o644))
	t.Setenv("SITEKIT_TEST_OVERRIDE", "from-process")

	require.True(t, LoadEnv(envFile))
	require.Equal(t, "from-process", os.Getenv("SITEKIT_TEST_OVERRIDE"))
}

func TestLoadEnv_TriesPathsInOrder(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(second, []byte("SITEKIT_TEST_ORDER=second\n"), 0o644))
	t.Setenv("SITEKIT_TEST_ORDER", "")
	require.NoError(t, os.Unsetenv("SITEKIT_TEST_ORDER"))

	require.True(t, LoadEnv(filepath.Join(dir, ".env"), second))
	require.Equal(t, "second", os.Getenv("SITEKIT_TEST_ORDER"))
}
