package cmd

import (
	"fmt"

	"github.com/viant/tally-mcp/internal/conv"
	"github.com/viant/tally-mcp/mcp/tool"
)

// ListToolsCmd prints every enabled tool with its workflow action name.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool name pattern (* or prefix)" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, t := range svc.MatchTools(c.Pattern) {
		fmt.Printf("%s\t%s\t%s\n", t.Metadata.Name, tool.Name(t.Metadata.Name).Action(), conv.Dereference(t.Metadata.Description))
	}
	return nil
}
