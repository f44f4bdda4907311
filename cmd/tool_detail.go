package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/tally-mcp/internal/conv"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (list-daos, tally/listDaos, ...)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	entry, err := svc.LookupTool(c.Name)
	if err != nil {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	description := conv.Dereference(entry.Metadata.Description)
	found := struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}{entry.Metadata.Name, description, entry.Metadata.InputSchema}

	if c.JSON {
		data, _ := json.MarshalIndent(found, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Name : %s\n", found.Name)
	fmt.Printf("Desc : %s\n", found.Description)
	js, _ := json.MarshalIndent(found.InputSchema, "", "  ")
	fmt.Printf("InputSchema:\n%s\n", string(js))
	return nil
}
