package pawlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "pawlist.yaml", "debug: true\nlog_categories: [sort, memory]\nno_color: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{"sort", "memory"}, cfg.LogCategories)
	require.NoError(t, cfg.Validate())

	logger := NewLoggerFromConfig(cfg)
	assert.True(t, logger.Enabled(CatSort))
	assert.True(t, logger.Enabled(CatMemory))
	assert.False(t, logger.Enabled(CatList))
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "pawlist.yaml", "debug: true\nverbose: yes\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.LogCategories = []string{"all"}
	require.NoError(t, cfg.Validate())

	cfg.LogCategories = []string{"list", "sorting"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sorting"`)
}

func TestConfigAllCategories(t *testing.T) {
	cfg := &Config{Debug: true, LogCategories: []string{"all"}}
	logger := NewLoggerFromConfig(cfg)
	for _, cat := range AllCategories {
		assert.True(t, logger.IsCategoryEnabled(cat), "category %s", cat)
	}
}
