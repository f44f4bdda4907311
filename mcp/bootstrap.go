package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"

	"github.com/viant/tally-mcp/mcp/action"
	"github.com/viant/tally-mcp/mcp/config"
	"github.com/viant/tally-mcp/mcp/dispatch"
	"github.com/viant/tally-mcp/tally"
	"github.com/viant/tally-mcp/tally/graphql"
)

// init orchestrates the preparation steps once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()
	if err := s.validate(); err != nil {
		return err
	}
	s.initTally()
	s.initWorkflowService()
	s.registerTools()
	s.logger.DebugContext(ctx, "service initialised", "endpoint", s.config.Tally.BaseURL, "tools", s.tools.Len())
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
}

// validate requires the API key only when the HTTP client is built here.
func (s *Service) validate() error {
	if s.requester != nil {
		return nil
	}
	return s.config.Validate()
}

func (s *Service) initTally() {
	if s.requester == nil {
		s.requester = graphql.New(s.config.Tally.BaseURL, s.config.Tally.APIKey,
			graphql.WithTimeout(s.config.Tally.Timeout),
			graphql.WithLogger(s.logger),
			graphql.WithMetrics(graphql.NewMetrics(s.registry)),
		)
	}
	s.tally = tally.New(s.requester, tally.WithLogger(s.logger))
	s.dispatcher = dispatch.New(s.tally,
		dispatch.WithLogger(s.logger),
		dispatch.WithMetrics(dispatch.NewMetrics(s.registry)),
	)
	s.actions = action.New(s.dispatcher)
}

// initWorkflowService assembles the Fluxor options and instantiates the engine.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)
	extensions := append([]types.Service{s.actions}, resolveBuiltinServices(s.config.Builtins)...)
	extensions = append(extensions, s.config.Extensions...)
	extensions = append(extensions, s.Workflow.Extensions...)
	s.Workflow.Extensions = extensions
	opts = append(opts, fluxor.WithExtensionServices(extensions...))
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
