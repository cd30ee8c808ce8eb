package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdirTemp changes into a fresh temp directory for the duration of the
// test, restoring the previous working directory afterwards. Equivalent
// to t.Chdir(t.TempDir()), which requires Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestInitThenBuild_ProducesWorkingSite(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, runInit("site.yaml", false))
	require.NoError(t, runBuild("site.yaml", "build"))

	index, err := os.ReadFile(filepath.Join("build", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "My Site")
	require.NotContains(t, string(index), "{{")

	page, err := os.ReadFile(filepath.Join("build", "hello.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<h1>Hello</h1>")

	require.FileExists(t, filepath.Join("build", "static", "css", "main.css"))

	// The scaffolded site has no dangling internal references.
	require.NoError(t, runCheck("build"))
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, runInit("site.yaml", false))
	require.Error(t, runInit("site.yaml", false))
	require.NoError(t, runInit("site.yaml", true))
}

func TestClean_RemovesOutput(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, runInit("site.yaml", false))
	require.NoError(t, runBuild("site.yaml", "build"))
	require.NoError(t, runClean("build"))

	require.NoDirExists(t, "build")
}

func TestBuild_WithoutConfigFileUsesEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SITE_NAME", "Env Site")

	// Minimal source tree matching the default layout.
	require.NoError(t, os.MkdirAll(filepath.Join("src", "templates"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join("src", "static"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join("src", "templates", "index.html"),
		[]byte(`<title>{{ .site.name }}</title>`), 0o644))

	require.NoError(t, runBuild("site.yaml", "build"))

	index, err := os.ReadFile(filepath.Join("build", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "Env Site")
}
