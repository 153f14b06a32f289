package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Contains(t, cfg.DBPath, "compass.db")
	assert.Equal(t, ":8484", cfg.HTTPAddr)
	assert.Equal(t, "api", cfg.HTTPPrefix)
}

func TestLoadFile_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/other.db\nhttp_addr: \":9000\"\n"), 0o644))

	fileCfg, err := loadFile(path)
	require.NoError(t, err)
	require.NotNil(t, fileCfg)

	cfg := Default()
	cfg.merge(*fileCfg)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "api", cfg.HTTPPrefix, "unset file values keep defaults")
}

func TestLoadFile_MissingIsNotAnError(t *testing.T) {
	fileCfg, err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, fileCfg)
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [broken"), 0o644))

	_, err := loadFile(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("COMPASS_DB_PATH", "/data/compass.db")
	t.Setenv("COMPASS_ORG_ID", "org-env")

	cfg := Default()
	cfg.applyEnv()
	assert.Equal(t, "/data/compass.db", cfg.DBPath)
	assert.Equal(t, "org-env", cfg.OrganizationID)
}
