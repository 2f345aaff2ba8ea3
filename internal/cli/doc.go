// Package cli parses command-line arguments, merges them over the YAML
// configuration and maps failures to process exit codes.
package cli
