package main

import (
	"os"

	"github.com/viant/tally-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
