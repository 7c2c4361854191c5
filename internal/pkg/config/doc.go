// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded from YAML files via viper with environment-variable
// overrides, validated, and made accessible throughout the application.
package config
