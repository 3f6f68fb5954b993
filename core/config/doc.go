// Package config loads the application configuration.
//
// Values come from struct tag defaults, a .env file in the given directory,
// and the environment, in increasing order of precedence. Keys are nested by
// section, and environment variables use underscores: SESSION_ON_PERSIST_FAILURE
// sets session.on_persist_failure.
//
// # Sections
//
//   - Server: session API port, API key, swagger toggle
//   - Remote: default API base and request timeout
//   - Session: persist failure policy, refresh on select, persist timeout
//   - Preference: location of the stored API base
//   - Backend: development backend port, read-only mode, seed file, images
//   - Storage: S3/MinIO credentials and the image bucket
//   - Database: backend database driver and connection details
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config
