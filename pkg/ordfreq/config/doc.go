// Package config loads and validates ordfreq configuration.
//
// Settings come from a YAML or TOML file layered over Default; command-line
// flags override them afterwards. Relative paths in a config file are
// relative to that file, so a config can travel with its stopword lists.
package config
