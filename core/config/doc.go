// Package config loads the service configuration.
//
// Values come from struct tag defaults, a .env file and the environment, with
// nested keys mapped to upper snake case (loader.max_retries is LOADER_MAX_RETRIES).
//
// # Sections
//
//   - Server: port, API key, shutdown bound, metrics toggle
//   - Storage: MinIO endpoint, credentials and model bucket
//   - Log: level and format
//   - Database: optional load history database
//   - Loader: model loader base path, retries, delay, timeout and fallback
//   - Garden: manifest path and layout parameters
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Loader.MaxRetries)
package config
