package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readConfig(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestSaveBaseURL_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveBaseURL(path, "http://candidates.internal:8080"))

	cfg := readConfig(t, path)
	api, ok := cfg["api"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "http://candidates.internal:8080", api["base_url"])
}

func TestSaveBaseURL_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveBaseURL(path, "https://talent.example.com"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# talentdb configuration")
	require.Contains(t, string(data), "show_stats: true")
	require.Contains(t, string(data), "base_url: https://talent.example.com")
	require.NotContains(t, string(data), "localhost:5000")
}

func TestSetValue_CreatesIntermediateMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  show_stats: false\n"), 0o600))

	require.NoError(t, SetValue(path, "flags.toast-keep-latest", "true"))

	cfg := readConfig(t, path)
	require.Equal(t, map[string]any{"show_stats": false}, cfg["ui"])
	require.Equal(t, map[string]any{"toast-keep-latest": true}, cfg["flags"])
}

func TestSetValue_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  toast_duration: 3s\n"), 0o600))

	require.NoError(t, SetValue(path, "ui.toast_duration", "5s"))

	cfg := readConfig(t, path)
	require.Equal(t, map[string]any{"toast_duration": "5s"}, cfg["ui"])
}

func TestSetValue_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty segment", func(t *testing.T) {
		err := SetValue(filepath.Join(dir, "a.yaml"), "api..base_url", "x")
		require.ErrorContains(t, err, "invalid config key")
	})

	t.Run("scalar in the way", func(t *testing.T) {
		path := filepath.Join(dir, "b.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api: legacy\n"), 0o600))
		err := SetValue(path, "api.base_url", "x")
		require.ErrorContains(t, err, "is not a mapping")
	})

	t.Run("mapping at leaf", func(t *testing.T) {
		path := filepath.Join(dir, "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: x\n"), 0o600))
		err := SetValue(path, "api", "x")
		require.ErrorContains(t, err, "is not a scalar")
	})

	t.Run("top level sequence", func(t *testing.T) {
		path := filepath.Join(dir, "d.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))
		err := SetValue(path, "api.base_url", "x")
		require.ErrorContains(t, err, "not a mapping")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "e.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api: [unclosed\n"), 0o600))
		err := SetValue(path, "api.base_url", "x")
		require.ErrorContains(t, err, "parsing config")
	})
}
