package mcp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/tally-mcp/internal/syncmap"
	"github.com/viant/tally-mcp/mcp/action"
	"github.com/viant/tally-mcp/mcp/config"
	"github.com/viant/tally-mcp/mcp/dispatch"
	"github.com/viant/tally-mcp/tally"
	"github.com/viant/tally-mcp/tally/graphql"
)

// Service bundles configuration, the tally service, the tool dispatcher and a
// Fluxor workflow engine exposing the same tools as actions. Instantiation
// lives in bootstrap.go.
type Service struct {
	Workflow
	started int32
	config  *config.Config

	requester  graphql.Requester
	tally      *tally.Service
	dispatcher *dispatch.Dispatcher
	actions    *action.Service
	logger     *slog.Logger
	registry   *prometheus.Registry

	// tools enabled by config.Tools, keyed by tool name.
	tools *syncmap.Map[*serverproto.ToolEntry]
}

type Workflow struct {
	Options    []fluxor.Option
	Runtime    *fluxor.Runtime
	Service    *fluxor.Service
	Extensions []types.Service
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service exposing all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Tally returns the governance service.
func (s *Service) Tally() *tally.Service { return s.tally }

// Registry returns the Prometheus registry collecting upstream and tool metrics.
func (s *Service) Registry() *prometheus.Registry { return s.registry }

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger { return s.logger }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithRequester replaces the HTTP GraphQL client, for tests and alternative
// transports. The API key is not required then.
func WithRequester(requester graphql.Requester) Option {
	return func(s *Service) {
		s.requester = requester
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithWorkflowOptions appends additional Fluxor options that will be used when
// the Workflow engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services next to the tally actions.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs a new service instance.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{tools: syncmap.NewRegistry[*serverproto.ToolEntry]()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the Fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime when it was started.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
