// Package config loads settings from environment variables and .env files.
//
// LoadEnv reads .env files with github.com/joho/godotenv without touching
// variables that are already set. Load parses the environment into any struct
// annotated with `env` tags using github.com/caarlos0/env/v11 and caches the
// result per type, so repeated calls are cheap. ForceReload and ResetCache
// exist for tests that change the environment.
//
// Config is the settings struct of the constraints command line tool:
//
//	CONSTRAINTS_SCHEMA   default schema file
//	CONSTRAINTS_GROUPS   comma separated validation groups
//	CONSTRAINTS_OUTPUT   table or json
//	CONSTRAINTS_STRICT   reject unknown targets (default true)
//	LOG_LEVEL            debug, info, warn or error
//	LOG_FORMAT           text or json
//	APP_ENV              development, staging or production
//
// Usage:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	log := logger.New(cfg.LoggerOptions("constraints")...)
package config
