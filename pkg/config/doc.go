// Package config parses environment variables into typed structs.
//
// Struct fields are bound with caarlos0/env tags. On first use a .env file in
// the working directory is loaded if present; real environment variables take
// precedence over it. Parsed values are cached per struct type, so repeated
// Load calls are cheap and return identical values.
//
//	type Config struct {
//		LogLevel string `env:"CHINAID_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads explicit dotenv files (later files override earlier ones and
// the process environment) and clears the cache. Reload bypasses the cache for
// a single type.
package config
