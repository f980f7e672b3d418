package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	return dir
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	setHome(t)

	cfg := Config{Token: "crb_test"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	setHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	setHome(t)

	original := Config{
		ServerURL: "https://eval.internal:8443",
		Token:     "crb_verylongtokenstring12345",
		Username:  "maria",
		Theme:     "dark",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, original.ServerURL, loaded.ServerURL)
	assert.Equal(t, original.Token, loaded.Token)
	assert.Equal(t, original.Username, loaded.Username)
	assert.Equal(t, original.Theme, loaded.Theme)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	setHome(t)

	require.NoError(t, (&Config{Token: "token1"}).Save())
	require.NoError(t, (&Config{Token: "token2"}).Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "token2", loaded.Token)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := setHome(t)

	cfgDir := filepath.Join(dir, ".crucible")
	os.MkdirAll(cfgDir, 0700)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(""), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := setHome(t)

	cfgDir := filepath.Join(dir, ".crucible")
	os.MkdirAll(cfgDir, 0700)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte("invalid: yaml: content:"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigMissingToken(t *testing.T) {
	dir := setHome(t)

	cfgDir := filepath.Join(dir, ".crucible")
	os.MkdirAll(cfgDir, 0700)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte("server_url: http://somewhere\n"), 0600))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	setHome(t)

	require.NoError(t, (&Config{Token: "secret"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestServerOnNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, "", cfg.Server())
	assert.Equal(t, "http://x", (&Config{ServerURL: "http://x"}).Server())
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".crucible")
	assert.Contains(t, path, "config")
}
