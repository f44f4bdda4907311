package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path or URL"`

	Run         *RunCmd         `command:"run"          description:"Run a workflow using tally actions"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute one tool and print its text output"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all enabled tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one Fluxor action"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the tally tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "run":
		o.Run = &RunCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
