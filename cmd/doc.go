// Package cmd implements the tally-mcp command-line interface. Each file
// registers a single sub-command (serve, exec, list-tools, tool, run, ...);
// configuration loading and service initialisation live in shared.go.
package cmd
