package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		yaml        string
		env         map[string]string
		expect      Tally
		expectAddr  string
	}{
		{
			description: "file values",
			yaml:        "tally:\n  baseURL: http://localhost:8080/query\n  apiKey: file-key\n  timeout: 5s\n",
			expect:      Tally{BaseURL: "http://localhost:8080/query", APIKey: "file-key", Timeout: 5 * time.Second},
		},
		{
			description: "environment overrides",
			yaml:        "tally:\n  apiKey: file-key\nmetrics:\n  addr: :9000\n",
			env:         map[string]string{"TALLY_API_KEY": "env-key", "TALLY_TIMEOUT": "2s", "TALLY_METRICS_ADDR": ":9100"},
			expect:      Tally{APIKey: "env-key", Timeout: 2 * time.Second},
			expectAddr:  ":9100",
		},
	}
	for _, testCase := range testCases {
		for _, key := range []string{"TALLY_API_KEY", "TALLY_BASE_URL", "TALLY_TIMEOUT", "TALLY_METRICS_ADDR"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
		for key, value := range testCase.env {
			t.Setenv(key, value)
		}
		location := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(location, []byte(testCase.yaml), 0o644), testCase.description)

		cfg, err := Load(context.Background(), location)
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, cfg.Tally, testCase.description)
		assert.EqualValues(t, testCase.expectAddr, cfg.Metrics.Addr, testCase.description)
	}
}

func TestConfig_InitValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Init()
	assert.EqualValues(t, "https://api.tally.xyz/query", cfg.Tally.BaseURL)
	assert.EqualValues(t, []string{"*"}, cfg.Tools)
	assert.EqualValues(t, []string{"nop", "printer"}, cfg.Builtins)

	err := cfg.Validate()
	require.Error(t, err)
	assert.EqualValues(t, "TALLY_API_KEY environment variable is required", err.Error())

	cfg.Tally.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
