// Package config provides configuration management for the inventory seeder.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Inventory: API base URL, token, TLS policy and request timeout
//   - Catalog: builtin table selection and catalog files
//   - Log: logging level and format
//   - Storage: S3/MinIO settings of the run report archive
//   - Database: sandbox record store connection
//   - Sandbox: sandbox HTTP server address and token
//   - Schedule: cron expression for repeated runs
//
// Nested keys map to environment variables by replacing dots with
// underscores, e.g. INVENTORY_URL, INVENTORY_TOKEN, STORAGE_ENABLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Inventory.URL)
package config
