// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// Load reads an optional .env file once, parses the environment into a
// struct through its env tags and caches the result per type, so every
// package asking for the same struct sees the same values.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
// LoadEnv reads other env files, for instance one per deployment, and
// ResetCache forgets parsed values, which tests rely on.
package config
