package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := FromViper(v)

	assert.Equal(t, "./Beauty_Pro_Inventory_System.xlsx", cfg.Generator.OutputPath)
	assert.Empty(t, cfg.Generator.SheetsDir)
	assert.Equal(t, "Beauty Pro", cfg.Generator.Title)
	assert.Equal(t, 50.0, cfg.Generator.MaxColumnWidth)
	assert.Equal(t, 2, cfg.Reorder.BufferUnits)
	assert.Zero(t, cfg.Reorder.BufferPercent)
	assert.True(t, cfg.Reorder.IncludeInventory)
	assert.False(t, cfg.Storage.Enabled)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("REORDER_BUFFER_UNITS", "5")
	t.Setenv("REORDER_BUFFER_PERCENT", "12.5")
	t.Setenv("INCLUDE_INVENTORY_REORDERS", "false")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("STORAGE_BUCKET", "reports")
	t.Setenv("MAX_COLUMN_WIDTH", "30")

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	cfg := FromViper(v)

	assert.Equal(t, 5, cfg.Reorder.BufferUnits)
	assert.Equal(t, 12.5, cfg.Reorder.BufferPercent)
	assert.False(t, cfg.Reorder.IncludeInventory)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "reports", cfg.Storage.Bucket)
	assert.Equal(t, 30.0, cfg.Generator.MaxColumnWidth)
}
