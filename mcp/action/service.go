package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"

	"github.com/viant/tally-mcp/internal/conv"
	"github.com/viant/tally-mcp/mcp/dispatch"
	"github.com/viant/tally-mcp/mcp/tool"
)

// Runner executes a decoded tool request.
type Runner interface {
	Run(ctx context.Context, req tool.Request) (*dispatch.Result, error)
}

// Service implements types.Service with one method per tool.
type Service struct {
	runner    Runner
	sigs      types.Signatures
	executors map[string]types.Executable
	tools     map[string]tool.Name
}

// New builds the action service for every catalog tool.
func New(runner Runner) *Service {
	s := &Service{
		runner:    runner,
		executors: map[string]types.Executable{},
		tools:     map[string]tool.Name{},
	}
	outputType := reflect.TypeOf(&dispatch.Result{})
	for _, definition := range tool.Catalog() {
		sample, ok := tool.New(definition.Name)
		if !ok {
			continue
		}
		name := definition.Name
		method := name.Method()
		s.tools[method] = name
		s.executors[method] = func(ctx context.Context, input, output interface{}) error {
			return s.execute(ctx, name, input, output)
		}
		s.sigs = append(s.sigs, types.Signature{
			Name:        method,
			Description: definition.Description,
			Input:       reflect.TypeOf(sample),
			Output:      outputType,
		})
	}
	return s
}

func (s *Service) execute(ctx context.Context, name tool.Name, input, output interface{}) error {
	req, err := decode(name, input)
	if err != nil {
		return err
	}
	result, err := s.runner.Run(ctx, req)
	if err != nil {
		definition, _ := tool.Lookup(name.String())
		return fmt.Errorf("Error %s: %w", definition.Action, err)
	}
	switch out := output.(type) {
	case nil:
	case *dispatch.Result:
		*out = *result
	case *interface{}:
		*out = result
	default:
		return conv.Convert(result, out)
	}
	return nil
}

// decode accepts the typed request or a generic map.
func decode(name tool.Name, input interface{}) (tool.Request, error) {
	req, _ := tool.New(name)
	if input == nil {
		return req, nil
	}
	if typed, ok := input.(tool.Request); ok && typed.Tool() == name {
		return typed, nil
	}
	if values, ok := input.(map[string]interface{}); ok {
		return tool.Decode(name.String(), values)
	}
	if err := conv.Convert(input, req); err != nil {
		return nil, fmt.Errorf("invalid %s input: %w", name, err)
	}
	return req, nil
}

func (s *Service) Name() string { return tool.ServiceName }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// ToolName returns the tool backing method.
func (s *Service) ToolName(method string) (tool.Name, bool) {
	ret, ok := s.tools[method]
	return ret, ok
}
