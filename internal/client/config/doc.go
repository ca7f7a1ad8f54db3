// Package config loads CLI configuration from three layered sources:
// built-in defaults, an optional JSON file (-c/-config), and command-line
// flags. Later sources override earlier ones.
package config
