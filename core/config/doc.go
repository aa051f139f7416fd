// Package config provides configuration management for the Ledger Manager.
//
// It uses Viper to read environment variables (optionally from a .env file) on top
// of defaults declared in `default` struct tags of every partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP listen address and API key (SERVER_PORT, SERVER_API_KEY)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Identifier: identifier length (IDENTIFIER_LENGTH)
//   - Catalog: optional name catalog (CATALOG_SOURCE, CATALOG_TABLE, ...)
//   - Database: catalog database connection (DATABASE_DRIVER, DATABASE_HOST, ...)
//   - Storage: catalog object storage (STORAGE_ENDPOINT, STORAGE_BUCKET, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
