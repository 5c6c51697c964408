package config

import (
	"reflect"
	"strings"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/database"
	"inventory-seeder/core/inventory"
	"inventory-seeder/core/logger"
	"inventory-seeder/core/server"
	"inventory-seeder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Inventory holds the target API endpoint and credentials.
	Inventory inventory.Config `mapstructure:"inventory"`
	// Catalog selects builtin tables and catalog files.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the run report archive.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the sandbox record store.
	Database database.Config `mapstructure:"database"`
	// Sandbox holds configuration for the sandbox HTTP server.
	Sandbox server.Config `mapstructure:"sandbox"`
	// Schedule is a cron expression repeating reconcile runs. Empty runs once.
	Schedule string `mapstructure:"schedule" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. INVENTORY_URL -> inventory.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Catalog.Files = compact(config.Catalog.Files)
	config.Catalog.Tables = compact(config.Catalog.Tables)
	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// compact trims list entries and drops empty ones ("a, ,b" -> [a b]).
func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
