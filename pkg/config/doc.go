// Package config handles configuration management for evreg.
// It layers the embedded defaults, an optional user file (TOML or YAML),
// EVREG_ environment variables and finally command line overrides, then
// decodes the result into Config.
package config
