package mcp

import (
	"context"
	"fmt"
	"testing"

	mcpclient "github.com/metoro-io/mcp-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient replays canned tool listings and call results.
type fakeClient struct {
	pages       [][]mcpclient.ToolRetType
	callResults map[string]string
	initErr     error
	listErr     error
	callErr     error

	initCalls int
	lastArgs  any
}

func (f *fakeClient) Initialize(context.Context) (*mcpclient.InitializeResponse, error) {
	f.initCalls++
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &mcpclient.InitializeResponse{}, nil
}

func (f *fakeClient) ListTools(_ context.Context, cursor *string) (*mcpclient.ToolsResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := 0
	if cursor != nil {
		fmt.Sscanf(*cursor, "%d", &page)
	}
	resp := &mcpclient.ToolsResponse{Tools: f.pages[page]}
	if page+1 < len(f.pages) {
		next := fmt.Sprintf("%d", page+1)
		resp.NextCursor = &next
	}
	return resp, nil
}

func (f *fakeClient) CallTool(_ context.Context, name string, arguments any) (*mcpclient.ToolResponse, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	f.lastArgs = arguments
	return mcpclient.NewToolResponse(mcpclient.NewTextContent(f.callResults[name])), nil
}

func strPtr(s string) *string { return &s }

func fakeDialer(client Client) func(o *ConnectOptions) {
	return func(o *ConnectOptions) {
		o.Dialer = func(ServerConfig) (Client, error) { return client, nil }
	}
}

func TestDialRejectsUnknownTransport(t *testing.T) {
	_, err := Dial(ServerConfig{Transport: "stdio", URL: "https://example.com/mcp"})
	assert.ErrorContains(t, err, "unsupported transport")
}

func TestDialRejectsBadURL(t *testing.T) {
	_, err := Dial(ServerConfig{Transport: TransportHTTP, URL: "not-a-url"})
	assert.ErrorContains(t, err, "invalid server url")
}

func TestDialBuildsClient(t *testing.T) {
	client, err := Dial(ServerConfig{
		Transport: TransportHTTP,
		URL:       "https://mcp.example.com/web/mcp",
		Headers:   map[string]string{"x-team-key": "secret"},
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestConnectBindsToolsAcrossPages(t *testing.T) {
	fake := &fakeClient{
		pages: [][]mcpclient.ToolRetType{
			{{Name: "web_search", Description: strPtr("Search the web")}},
			{{Name: "web_fetch", Description: strPtr("Fetch a page")}},
		},
	}

	ts, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	require.NoError(t, err)

	assert.Equal(t, 1, fake.initCalls)
	require.Equal(t, 2, ts.Len())
	assert.Equal(t, "web_search", ts.Tools()[0].Name())
	assert.Equal(t, "Search the web", ts.Tools()[0].Description())
	assert.Equal(t, "web_fetch", ts.Tools()[1].Name())
}

func TestConnectInitializeFailure(t *testing.T) {
	fake := &fakeClient{initErr: fmt.Errorf("boom")}

	_, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	assert.ErrorContains(t, err, "initialize")
}

func TestConnectListFailure(t *testing.T) {
	fake := &fakeClient{listErr: fmt.Errorf("boom")}

	_, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	assert.ErrorContains(t, err, "list tools")
}

func TestToolsetCall(t *testing.T) {
	fake := &fakeClient{
		pages:       [][]mcpclient.ToolRetType{{{Name: "web_search"}}},
		callResults: map[string]string{"web_search": "Paris is the capital of France."},
	}

	ts, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	require.NoError(t, err)

	out, err := ts.Call(context.Background(), "web_search", `{"query":"capital of France"}`)
	require.NoError(t, err)
	assert.Equal(t, "Paris is the capital of France.", out)
	assert.Equal(t, map[string]any{"query": "capital of France"}, fake.lastArgs)
}

func TestToolsetCallUnknownTool(t *testing.T) {
	fake := &fakeClient{pages: [][]mcpclient.ToolRetType{{{Name: "web_search"}}}}

	ts, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	require.NoError(t, err)

	_, err = ts.Call(context.Background(), "nope", "{}")
	assert.ErrorContains(t, err, "not found")
}

func TestToolsetCallInvalidArguments(t *testing.T) {
	fake := &fakeClient{pages: [][]mcpclient.ToolRetType{{{Name: "web_search"}}}}

	ts, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	require.NoError(t, err)

	_, err = ts.Call(context.Background(), "web_search", "{broken")
	assert.ErrorContains(t, err, "invalid arguments")
}

func TestRemoteToolDefaultParameters(t *testing.T) {
	fake := &fakeClient{pages: [][]mcpclient.ToolRetType{{{Name: "web_search"}}}}

	ts, err := Connect(context.Background(), []ServerConfig{{Transport: TransportHTTP, URL: "https://x/mcp"}}, fakeDialer(fake))
	require.NoError(t, err)

	params := ts.Tools()[0].Parameters()
	assert.Equal(t, "object", params["type"])
}
