package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8000/api/", cfg.Inventory.URL)
		assert.Equal(t, 30, cfg.Inventory.TimeoutSeconds)
		assert.False(t, cfg.Inventory.InsecureSkipVerify)
		assert.True(t, cfg.Catalog.Builtin)
		assert.Nil(t, cfg.Catalog.Files)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Storage.Enabled)
		assert.Equal(t, "inventory-reports", cfg.Storage.Bucket)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, ":memory:", cfg.Database.Name)
		assert.Equal(t, "8000", cfg.Sandbox.Port)
		assert.Empty(t, cfg.Schedule)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("INVENTORY_URL", "https://netbox.example.com")
		t.Setenv("INVENTORY_TOKEN", "abc")
		t.Setenv("INVENTORY_INSECURE_SKIP_VERIFY", "true")
		t.Setenv("CATALOG_TABLES", "regions, tenants,,")
		t.Setenv("SCHEDULE", "@every 1h")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "https://netbox.example.com", cfg.Inventory.URL)
		assert.Equal(t, "abc", cfg.Inventory.Token)
		assert.True(t, cfg.Inventory.InsecureSkipVerify)
		assert.Equal(t, []string{"regions", "tenants"}, cfg.Catalog.Tables)
		assert.Equal(t, "@every 1h", cfg.Schedule)
	})

	t.Run("Dotenv File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INVENTORY_TOKEN=from-file\nLOG_LEVEL=debug\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("INVENTORY_TOKEN")
			os.Unsetenv("LOG_LEVEL")
		})

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Inventory.Token)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}

func TestCompact(t *testing.T) {
	assert.Nil(t, compact(nil))
	assert.Nil(t, compact([]string{"", " "}))
	assert.Equal(t, []string{"a", "b"}, compact([]string{" a", "", "b "}))
}
