package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"

	"github.com/viant/tally-mcp/tally/graphql"
)

// EnvPrefix prefixes every environment override (TALLY_API_KEY, ...).
const EnvPrefix = "tally"

// Tally configures the upstream GraphQL API.
type Tally struct {
	BaseURL string        `yaml:"baseURL,omitempty" json:"baseURL,omitempty" envconfig:"BASE_URL"`
	APIKey  string        `yaml:"apiKey,omitempty" json:"-" envconfig:"API_KEY"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" envconfig:"TIMEOUT"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	Addr string `yaml:"addr,omitempty" json:"addr,omitempty" envconfig:"METRICS_ADDR"`
}

type Config struct {
	Server     *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Tally      Tally              `yaml:"tally,omitempty" json:"tally,omitempty"`
	Metrics    Metrics            `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Tools      []string           `yaml:"tools,omitempty" json:"tools,omitempty"`
	Builtins   []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Options    []fluxor.Option    `yaml:"-" json:"-"`
	Extensions []types.Service    `yaml:"-" json:"-"`
}

// Load downloads the configuration from URL (a local path or any afs supported
// location), then applies environment overrides.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays TALLY_* environment variables. Unset variables keep the
// loaded values.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, &c.Tally); err != nil {
		return fmt.Errorf("error processing environment: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &c.Metrics); err != nil {
		return fmt.Errorf("error processing environment: %w", err)
	}
	return nil
}

// Init applies defaults.
func (c *Config) Init() {
	if strings.TrimSpace(c.Tally.BaseURL) == "" {
		c.Tally.BaseURL = graphql.DefaultEndpoint
	}
	if len(c.Tools) == 0 {
		c.Tools = []string{"*"}
	}
	if len(c.Builtins) == 0 {
		c.Builtins = []string{"nop", "printer"}
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tally.APIKey) == "" {
		return fmt.Errorf("TALLY_API_KEY environment variable is required")
	}
	if c.Tally.Timeout < 0 {
		return fmt.Errorf("tally.timeout must not be negative: %v", c.Tally.Timeout)
	}
	return nil
}
