// Package config defines the YAML/JSON configuration model of the tally MCP
// service, loads it from any afs-supported location and overlays TALLY_*
// environment variables.
package config
