// Package config loads settings for the linktime CLI.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. a TOML file: the --config path, or $XDG_CONFIG_HOME/linktime/config.toml
//  3. LINKTIME_* environment variables (LINKTIME_OUTPUT_FORMAT=json sets
//     output.format)
//
// Plug-in registration runs before main and is never configurable.
package config
