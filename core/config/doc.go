// Package config provides configuration management for the service locator.
//
// It utilizes Viper for loading configuration from environment variables,
// optionally seeded from a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: inspection HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Locator: default loader for service definitions
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Locator.DefaultLoader)
package config
