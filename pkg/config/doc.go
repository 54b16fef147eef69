// Package config handles configuration management for inputbox.
// It supports loading configuration from multiple sources including
// the embedded defaults, the user's TOML file, and INPUTBOX_ environment
// variables.
package config
