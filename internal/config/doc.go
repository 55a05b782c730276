// Package config loads, normalizes, and validates cine-insights configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY (including values supplied through a .env file). The Config
// type centralizes every knob the CLI needs: TMDB credentials, report output
// location, recommendation weights, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, weights that sum to one, and clear validation errors.
package config
