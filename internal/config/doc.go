// Package config loads, merges, and validates the tap-server configuration.
//
// Values come from four sources, merged in order of decreasing precedence:
// environment variables, command-line flags, an optional JSON file pointed to
// by CONFIG / -c, and baked-in defaults. Merging uses mergo, so a later
// source only fills fields the earlier sources left empty.
package config
