// Package config loads TOML configuration for the scroller: global
// display settings, replacement rules, and the list of fragments that
// make up the output line.
package config
