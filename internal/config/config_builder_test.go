package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	vars, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestBuild_LaterLayerWins(t *testing.T) {
	vars, err := newConfigBuilder().
		withValues(map[string]string{"A": "1", "B": "true"}).
		withValues(map[string]string{"B": "false", "C": "3"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "false", "C": "3"}, vars)
}

func TestBuild_EmptyValueKeepsEarlierLayer(t *testing.T) {
	vars, err := newConfigBuilder().
		withValues(map[string]string{"VITE_DEBUG": "true", "SMOKE_EMAIL": "a@b.c"}).
		withValues(map[string]string{"VITE_DEBUG": "", "SMOKE_EMAIL": "", "ONLY_EMPTY": ""}).
		build()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"VITE_DEBUG": "true", "SMOKE_EMAIL": "a@b.c"}, vars)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	_, err := newConfigBuilder().
		withDotenv(filepath.Join(t.TempDir(), "missing.env")).
		build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadEnvFile)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_LayerPriority(t *testing.T) {
	dotenv := writeTempFile(t, ".env", "VITE_APP_NAME=dotenv\nVITE_APP_VERSION=1.0.0\nVITE_DEBUG=true\nVITE_API_BASE_URL=http://dotenv\n")
	jsonFile := writeTempFile(t, "config.json", `{"app_info":{"version":"3.0.0"},"api":{"base_url":"http://json"}}`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--api-base-url", "http://flag"}))

	vars, err := newConfigBuilder().
		withDotenv(dotenv).
		withEnv([]string{"VITE_APP_VERSION=2.0.0", "VITE_DEBUG=false"}).
		withJSON(jsonFile).
		withFlags(fs).
		build()
	require.NoError(t, err)

	assert.Equal(t, "dotenv", vars["VITE_APP_NAME"], "only the dotenv file sets the name")
	assert.Equal(t, "false", vars["VITE_DEBUG"], "environment overrides dotenv, including with false")
	assert.Equal(t, "3.0.0", vars["VITE_APP_VERSION"], "json overrides environment")
	assert.Equal(t, "http://flag", vars["VITE_API_BASE_URL"], "flags override everything")
}

func TestWithJSON_PathFromConfigVariable(t *testing.T) {
	jsonFile := writeTempFile(t, "config.json", `{"app_info":{"name":"from-json"}}`)

	vars, err := newConfigBuilder().
		withEnv([]string{"CONFIG=" + jsonFile}).
		withJSON("").
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", vars["VITE_APP_NAME"])
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON("")
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestWithJSON_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().withJSON(filepath.Join(t.TempDir(), "nope.json")).build()
	assert.Error(t, err)
}

func TestWithFlags_NilIsNoop(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestWithValues_CopiesInput(t *testing.T) {
	in := map[string]string{"A": "1"}
	b := newConfigBuilder().withValues(in)
	in["A"] = "changed"

	vars, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1", vars["A"])
}
