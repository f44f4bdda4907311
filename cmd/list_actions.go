package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/fluxor/model/types"

	"github.com/viant/tally-mcp/mcp/tool"
)

// ListActionsCmd prints the workflow services and their methods. Methods of
// the tally service also show the MCP tool they back.
type ListActionsCmd struct {
	Service string `short:"s" long:"service" description:"only list methods of this service (tally, system/exec)"`
}

func (c *ListActionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	actions := svc.WorkflowService().Actions()
	names := actions.Services()
	sort.Strings(names)
	matched := false
	for _, name := range names {
		if c.Service != "" && c.Service != name {
			continue
		}
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		matched = true
		fmt.Println(name)
		for _, line := range actionLines(service) {
			fmt.Println(line)
		}
	}
	if !matched && c.Service != "" {
		return fmt.Errorf("service %q not found", c.Service)
	}
	return nil
}

// actionLines renders one tab separated line per method, sorted by name.
func actionLines(service types.Service) []string {
	sigs := append(types.Signatures(nil), service.Methods()...)
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
	lines := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		columns := []string{sig.Name}
		if service.Name() == tool.ServiceName {
			columns = append(columns, tool.NewName(sig.Name).String())
		}
		columns = append(columns, sig.Description)
		lines = append(lines, "  "+strings.Join(columns, "\t"))
	}
	return lines
}
