package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/viant/tally-mcp/mcp"
	mcpconfig "github.com/viant/tally-mcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// loadConfig reads the config file when given, otherwise starts from an empty
// config; TALLY_* environment variables apply in both cases.
func loadConfig(ctx context.Context) (*mcpconfig.Config, error) {
	if cfgPath != "" {
		return mcpconfig.Load(ctx, cfgPath)
	}
	cfg := &mcpconfig.Config{}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to stderr so stdout stays free for tool output and stdio
// transports. TALLY_DEBUG=1 enables debug records.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("TALLY_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		cfg, err := loadConfig(ctx)
		if err != nil {
			svcErr = err
			return
		}
		if os.Getenv("TALLY_DEBUG_CONFIG") == "1" {
			_ = json.NewEncoder(os.Stderr).Encode(cfg)
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithLogger(newLogger()))
	})
	return svcInst, svcErr
}
