package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConfigPath(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "short flag", args: []string{"serve", "-f", "tally.yaml"}, expect: "tally.yaml"},
		{description: "long flag", args: []string{"--config", "s3://bucket/tally.yaml", "list-tools"}, expect: "s3://bucket/tally.yaml"},
		{description: "equals form", args: []string{"exec", "--config=cfg.json"}, expect: "cfg.json"},
		{description: "missing value", args: []string{"serve", "-f"}, expect: ""},
		{description: "absent", args: []string{"list-tools"}, expect: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, extractConfigPath(testCase.args), testCase.description)
	}
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "serve", commandName([]string{"serve"}))
	assert.Equal(t, "exec", commandName([]string{"-f", "tally.yaml", "exec", "-n", "list-daos"}))
	assert.Equal(t, "list-tools", commandName([]string{"--config=x.yaml", "list-tools"}))
	assert.Equal(t, "", commandName(nil))
}

func TestSplitAction(t *testing.T) {
	testCases := []struct {
		description   string
		name          string
		expectService string
		expectMethod  string
		expectErr     bool
	}{
		{description: "dot", name: "tally.listDaos", expectService: "tally", expectMethod: "listDaos"},
		{description: "slash", name: "tally/getProposal", expectService: "tally", expectMethod: "getProposal"},
		{description: "nested service", name: "system/storage.list", expectService: "system/storage", expectMethod: "list"},
		{description: "no separator", name: "listDaos", expectErr: true},
		{description: "trailing separator", name: "tally.", expectErr: true},
	}
	for _, testCase := range testCases {
		service, method, err := splitAction(testCase.name)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectService, service, testCase.description)
		assert.Equal(t, testCase.expectMethod, method, testCase.description)
	}
}

func TestOptions_Init(t *testing.T) {
	testCases := []struct {
		description string
		command     string
		check       func(o *Options) bool
	}{
		{description: "serve", command: "serve", check: func(o *Options) bool { return o.Serve != nil }},
		{description: "exec", command: "exec", check: func(o *Options) bool { return o.Exec != nil }},
		{description: "list-tools", command: "list-tools", check: func(o *Options) bool { return o.ListTools != nil }},
		{description: "tool", command: "tool", check: func(o *Options) bool { return o.Tool != nil }},
		{description: "run", command: "run", check: func(o *Options) bool { return o.Run != nil }},
	}
	for _, testCase := range testCases {
		options := &Options{}
		options.Init(testCase.command)
		assert.True(t, testCase.check(options), testCase.description)
	}
}
