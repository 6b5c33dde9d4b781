// Package config loads, defaults, and validates the silbe configuration
// file (TOML). A .env file in the working directory and SILBE_* environment
// variables can override path settings.
package config
