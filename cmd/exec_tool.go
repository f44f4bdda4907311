package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/viant/tally-mcp/mcp/tool"
)

// ExecCmd executes one tool from the CLI. Arguments can be supplied either
// inline via -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name   string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (e.g. list-daos)" required:"yes"`
	Inline string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File   string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	JSON   bool   `long:"json" description:"Print result as JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}

	name := c.Name
	if _, ok := tool.Lookup(name); !ok {
		name = tool.Canonical(name).String()
	}
	out, err := svc.ExecuteTool(context.Background(), name, args)
	if err != nil {
		return err
	}

	if c.JSON {
		bytes, _ := json.MarshalIndent(map[string]string{"tool": name, "text": out}, "", "  ")
		fmt.Println(string(bytes))
		return nil
	}
	fmt.Println(out)
	return nil
}
