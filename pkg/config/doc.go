// Package config loads service configuration from environment variables.
//
// Load reads the optional .env file once (github.com/joho/godotenv), parses
// the environment into a struct with `env` tags
// (github.com/caarlos0/env/v11) and caches the result per type:
//
//	var cfg config.Service
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//
// Service describes the schemad validation service: listen address, schema
// directory, error status and strict mode of the validation middleware, and
// logging.
package config
