// Package config provides configuration management for the Menu Builder.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, body limit)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings for menu media
//   - Log: Logging level and format
//   - Auth: JWT secret and token lifetime
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
