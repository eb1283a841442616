// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Every configuration
// type is parsed once and cached, so packages can call Load freely.
//
// # Usage
//
//	type Config struct {
//		LogSink string `env:"BROWSER_DETAILS_LOG_SINK" envDefault:"slog"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Additional files can be loaded explicitly before the first Load:
//
//	config.MustLoadEnv("deploy/.env")
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
//
// Tests that change the environment between loads should call ResetCache.
package config
