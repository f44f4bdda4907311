package cmd

import (
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI, kept outside package main so it can be
// driven from tests.
func Run(args []string) {
	cfgPath := extractConfigPath(args)

	// Make config path discoverable by sub-commands via the global singleton.
	setConfigPath(cfgPath)

	opts := &Options{}
	opts.Init(commandName(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		log.Fatalf("%v", err)
	}
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before the full flags parsing is performed so that sub-commands can load the
// config early from a deterministic location.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}

// commandName returns the first positional argument, skipping the global
// -f/--config option and its value.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-f" || a == "--config":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
