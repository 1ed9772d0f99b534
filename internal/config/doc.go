// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml, and PUZZLES_-prefixed environment
// variables. Environment variables take precedence over the file.
package config
