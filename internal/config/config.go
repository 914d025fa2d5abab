package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Generator GeneratorConfig
	Reorder   ReorderConfig
	Storage   StorageConfig
	LogLevel  string
}

type GeneratorConfig struct {
	OutputPath     string
	SheetsDir      string
	Title          string
	MaxColumnWidth float64
}

type ReorderConfig struct {
	BufferUnits      int
	BufferPercent    float64
	IncludeInventory bool
}

type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Prefix    string
}

var (
	once     sync.Once
	instance *Config
)

// Load reads .env (if present) and the environment once.
func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		v := viper.New()
		SetDefaults(v)
		v.AutomaticEnv()

		instance = FromViper(v)
	})

	return instance
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("OUTPUT_PATH", "./Beauty_Pro_Inventory_System.xlsx")
	v.SetDefault("SHEETS_DIR", "")
	v.SetDefault("WORKBOOK_TITLE", "Beauty Pro")
	v.SetDefault("MAX_COLUMN_WIDTH", 50)
	v.SetDefault("REORDER_BUFFER_UNITS", 2)
	v.SetDefault("REORDER_BUFFER_PERCENT", 0)
	v.SetDefault("INCLUDE_INVENTORY_REORDERS", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_ENABLED", false)
	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET_KEY", "")
	v.SetDefault("STORAGE_BUCKET", "")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_USE_SSL", true)
	v.SetDefault("STORAGE_PREFIX", "workbooks")
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Generator: GeneratorConfig{
			OutputPath:     v.GetString("OUTPUT_PATH"),
			SheetsDir:      v.GetString("SHEETS_DIR"),
			Title:          v.GetString("WORKBOOK_TITLE"),
			MaxColumnWidth: v.GetFloat64("MAX_COLUMN_WIDTH"),
		},
		Reorder: ReorderConfig{
			BufferUnits:      v.GetInt("REORDER_BUFFER_UNITS"),
			BufferPercent:    v.GetFloat64("REORDER_BUFFER_PERCENT"),
			IncludeInventory: v.GetBool("INCLUDE_INVENTORY_REORDERS"),
		},
		Storage: StorageConfig{
			Enabled:   v.GetBool("STORAGE_ENABLED"),
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
			Bucket:    v.GetString("STORAGE_BUCKET"),
			Region:    v.GetString("STORAGE_REGION"),
			UseSSL:    v.GetBool("STORAGE_USE_SSL"),
			Prefix:    v.GetString("STORAGE_PREFIX"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}
