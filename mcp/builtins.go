package mcp

import (
	"sort"
	"strings"

	"github.com/viant/fluxor/model/types"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists the Fluxor action services that workflows may combine
// with tally actions, for example to print or store a report.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices converts patterns ("*" for all, "system/" prefix or
// exact name) into service instances, in name order.
func resolveBuiltinServices(patterns []string) []types.Service {
	selected := make(map[string]struct{})
	for _, p := range patterns {
		isPrefix := p == "*" || strings.HasSuffix(p, "/")
		for name := range builtinFactories {
			if p == "*" || (isPrefix && strings.HasPrefix(name, p)) || (!isPrefix && name == p) {
				selected[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}
