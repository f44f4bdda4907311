package tool

import (
	"strings"
	"unicode"
)

// ServiceName is the workflow service exposing every tool as an action.
const ServiceName = "tally"

// Name represents an MCP tool name such as "list-daos".
type Name string

// Method returns the workflow action method name ("listDaos").
func (t Name) Method() string {
	parts := strings.Split(string(t), "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// Action returns the qualified workflow action ("tally.listDaos").
func (t Name) Action() string {
	return ServiceName + "." + t.Method()
}

func (t Name) String() string {
	return string(t)
}

// NewName converts an action method name back to its tool name.
func NewName(method string) Name {
	var b strings.Builder
	for i, r := range method {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return Name(b.String())
}

// Canonical normalizes user supplied spellings ("list_daos", "tally/listDaos",
// "tally.listDaos") to the tool name.
func Canonical(name string) Name {
	name = strings.TrimSpace(name)
	for _, sep := range []string{"/", ".", "-", "_"} {
		name = strings.TrimPrefix(name, ServiceName+sep)
	}
	name = strings.NewReplacer("_", "-", "/", "-", ".", "-", " ", "-").Replace(name)
	return Name(strings.ToLower(string(NewName(name))))
}
