package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := &Config{
		Vault:        "/notes",
		Stylesheet:   "infobox.css",
		Caption:      "Info",
		OutputFormat: "json",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("IBX_VAULT", "/env/notes")
	t.Setenv("IBX_CAPTION", "环境")

	cfg := &Config{Vault: "/file/notes", Stylesheet: "keep.css"}
	cfg.LoadFromEnv()

	assert.Equal(t, "/env/notes", cfg.Vault)
	assert.Equal(t, "环境", cfg.Caption)
	// Unset env vars leave file values alone.
	assert.Equal(t, "keep.css", cfg.Stylesheet)
}

func TestLoadWithEnv_MissingFileUsesEnvOnly(t *testing.T) {
	t.Setenv("IBX_STYLESHEET", "env.css")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "env.css", cfg.Stylesheet)
}

func TestValidate_EmptyConfigIsFine(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_VaultMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, (&Config{Vault: dir}).Validate())
	assert.Error(t, (&Config{Vault: file}).Validate())
	assert.Error(t, (&Config{Vault: filepath.Join(dir, "missing")}).Validate())
}

func TestDefaultConfigPath_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "ibx", "config.yml"), DefaultConfigPath())
}
