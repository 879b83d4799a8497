// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tag parsing. Every configuration
// type is parsed once per process and cached; Reset clears the cache in
// tests.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
// Parse failures wrap ErrParsingConfig and can be matched with errors.Is.
package config
