package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tally-mcp/tally/errs"
)

func TestClient_Request(t *testing.T) {
	var testCases = []struct {
		description string
		status      int
		body        string
		expectErr   string
		expectKind  errs.Kind
		expectName  string
	}{
		{
			description: "data decoded",
			status:      http.StatusOK,
			body:        `{"data":{"organization":{"name":"Uniswap"}}}`,
			expectName:  "Uniswap",
		},
		{
			description: "graphql errors surfaced",
			status:      http.StatusOK,
			body:        `{"data":null,"errors":[{"message":"organization not found","extensions":{"code":404}}]}`,
			expectErr:   "GraphQL Error (Code: 200): organization not found",
			expectKind:  errs.Upstream,
		},
		{
			description: "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `rate limit exceeded`,
			expectErr:   "GraphQL Error (Code: 429): rate limit exceeded",
			expectKind:  errs.Upstream,
		},
		{
			description: "bad gateway without body",
			status:      http.StatusBadGateway,
			body:        ``,
			expectErr:   "GraphQL Error (Code: 502): Bad Gateway",
			expectKind:  errs.Upstream,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var received request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.EqualValues(t, "test-key", r.Header.Get(APIKeyHeader))
				assert.EqualValues(t, http.MethodPost, r.Method)
				data, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(data, &received)
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			defer srv.Close()

			registry := prometheus.NewRegistry()
			client := New(srv.URL, "test-key", WithMetrics(NewMetrics(registry)))
			var out struct {
				Organization struct {
					Name string `json:"name"`
				} `json:"organization"`
			}
			err := client.Request(context.Background(), "query OrganizationBySlug($input: OrganizationInput!) { organization(input: $input) { name } }", map[string]interface{}{"input": map[string]interface{}{"slug": "uniswap"}}, &out)
			assert.Contains(t, received.Query, "OrganizationBySlug")
			assert.NotNil(t, received.Variables["input"])
			count, gatherErr := testutil.GatherAndCount(registry, metricNamePrefix+"requests_total")
			require.NoError(t, gatherErr)
			assert.EqualValues(t, 1, count)
			if testCase.expectErr != "" {
				require.Error(t, err)
				assert.EqualValues(t, testCase.expectErr, err.Error())
				assert.True(t, errs.Is(err, testCase.expectKind))
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expectName, out.Organization.Name)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	err := New(endpoint, "k").Request(context.Background(), "query Q { a }", nil, nil)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Upstream))
	assert.Contains(t, err.Error(), "GraphQL request failed")
}

func TestClient_Request_LongErrorBody(t *testing.T) {
	body := "a" + strings.Repeat("é", 300)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	err := New(srv.URL, "k").Request(context.Background(), "query Q { a }", nil, nil)
	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.EqualValues(t, "GraphQL Error (Code: 500): a"+strings.Repeat("é", 255)+"...", err.Error())
}

func TestTruncateDetail(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		limit       int
		expect      string
	}{
		{description: "within limit", text: "rate limit", limit: 16, expect: "rate limit"},
		{description: "exact limit", text: "abcd", limit: 4, expect: "abcd"},
		{description: "ascii cut", text: "abcdef", limit: 4, expect: "abcd..."},
		{description: "cut inside two byte rune", text: "aéé", limit: 4, expect: "aé..."},
		{description: "cut inside four byte rune", text: "ab🙂", limit: 4, expect: "ab..."},
		{description: "cut before rune start", text: "aé", limit: 1, expect: "a..."},
	}
	for _, testCase := range testCases {
		actual := truncateDetail(testCase.text, testCase.limit)
		assert.True(t, utf8.ValidString(actual), testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestOperationName(t *testing.T) {
	assert.EqualValues(t, "Delegates", OperationName("\n  query Delegates($input: DelegatesInput!) {"))
	assert.EqualValues(t, "anonymous", OperationName("{ organizations { id } }"))
}

func TestErrors_NotFound(t *testing.T) {
	assert.True(t, Errors{{Message: "Organization not found"}}.NotFound())
	assert.True(t, Errors{{Message: "x", Extensions: &Extensions{Code: "NOT_FOUND"}}}.NotFound())
	assert.True(t, Errors{{Message: "x", Extensions: &Extensions{Status: &Status{Code: 5}}}}.NotFound())
	assert.False(t, Errors{{Message: "internal"}}.NotFound())
	assert.False(t, Errors{}.NotFound())
}

func TestIsNotFound(t *testing.T) {
	missing := Errors{{Message: "organization not found"}}
	assert.True(t, IsNotFound(errs.Upstreamf(missing, "GraphQL Error (Code: 200)")))
	assert.True(t, IsNotFound(errs.WrapUpstream(&StatusError{StatusCode: 404, Detail: "x", Errors: missing})))
	assert.False(t, IsNotFound(errs.WrapUpstream(&StatusError{StatusCode: 502, Detail: "Bad Gateway"})))
	assert.False(t, IsNotFound(errs.Upstreamf(Errors{{Message: "boom"}}, "GraphQL Error (Code: 200)")))
}
