// Package mcp connects agents to external tool-provider servers speaking the
// Model Context Protocol. The protocol itself is delegated to the
// metoro-io/mcp-golang client; this package only describes servers, binds
// their advertised tools and exposes them through the tool.Tool interface.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	mcpclient "github.com/metoro-io/mcp-golang"
	mcphttp "github.com/metoro-io/mcp-golang/transport/http"

	"github.com/FenadoAI/agentkit/tool"
)

// TransportHTTP is the only transport kind currently supported for remote
// tool providers.
const TransportHTTP = "http"

// ServerConfig describes a single tool-provider server.
type ServerConfig struct {
	Transport string            `json:"type"`
	URL       string            `json:"url"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// Client is the slice of the mcp-golang client surface the toolset uses.
// *mcpclient.Client satisfies it; tests supply fakes.
type Client interface {
	Initialize(ctx context.Context) (*mcpclient.InitializeResponse, error)
	ListTools(ctx context.Context, cursor *string) (*mcpclient.ToolsResponse, error)
	CallTool(ctx context.Context, name string, arguments any) (*mcpclient.ToolResponse, error)
}

// ConnectOptions configure Connect.
type ConnectOptions struct {
	// Dialer builds a protocol client for a server description. Defaults
	// to Dial; tests override it to avoid network access.
	Dialer func(sc ServerConfig) (Client, error)
}

// Dial validates a server description and builds a protocol client for it.
// No network traffic happens until Initialize is called on the result.
func Dial(sc ServerConfig) (Client, error) {
	if sc.Transport != TransportHTTP {
		return nil, fmt.Errorf("unsupported transport %q", sc.Transport)
	}
	u, err := url.Parse(sc.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", sc.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: missing scheme or host", sc.URL)
	}

	endpoint := u.Path
	if endpoint == "" {
		endpoint = "/"
	}
	transport := mcphttp.NewHTTPClientTransport(endpoint)
	transport.WithBaseURL(u.Scheme + "://" + u.Host)
	for k, v := range sc.Headers {
		transport.WithHeader(k, v)
	}
	return mcpclient.NewClient(transport), nil
}

// Connect establishes a connection to every described server, lists the
// tools each advertises and returns them bound into a single Toolset. Any
// failure aborts the whole connect; callers that want best-effort tool
// augmentation absorb the error themselves.
func Connect(ctx context.Context, servers []ServerConfig, optFns ...func(o *ConnectOptions)) (*Toolset, error) {
	opts := ConnectOptions{Dialer: Dial}
	for _, fn := range optFns {
		fn(&opts)
	}

	ts := &Toolset{byName: make(map[string]tool.Tool)}
	for _, sc := range servers {
		client, err := opts.Dialer(sc)
		if err != nil {
			return nil, err
		}
		if _, err := client.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("initialize %s: %w", sc.URL, err)
		}
		if err := ts.bind(ctx, client); err != nil {
			return nil, fmt.Errorf("list tools %s: %w", sc.URL, err)
		}
	}
	return ts, nil
}

// Toolset holds the tools bound from one or more tool-provider servers.
// It is immutable after Connect and safe for concurrent use.
type Toolset struct {
	tools  []tool.Tool
	byName map[string]tool.Tool
}

// bind pages through the server's tool list and wraps every advertised tool.
func (ts *Toolset) bind(ctx context.Context, client Client) error {
	var cursor *string
	for {
		resp, err := client.ListTools(ctx, cursor)
		if err != nil {
			return err
		}
		for _, t := range resp.Tools {
			rt := &remoteTool{client: client, name: t.Name}
			if t.Description != nil {
				rt.description = *t.Description
			}
			if schema, ok := t.InputSchema.(map[string]any); ok {
				rt.parameters = schema
			}
			if _, exists := ts.byName[rt.name]; exists {
				continue
			}
			ts.tools = append(ts.tools, rt)
			ts.byName[rt.name] = rt
		}
		if resp.NextCursor == nil || *resp.NextCursor == "" {
			return nil
		}
		cursor = resp.NextCursor
	}
}

// Tools returns the bound tools in server advertisement order.
func (ts *Toolset) Tools() []tool.Tool { return ts.tools }

// Len returns the number of bound tools.
func (ts *Toolset) Len() int { return len(ts.tools) }

// Call invokes a bound tool by name with JSON-encoded arguments.
func (ts *Toolset) Call(ctx context.Context, name, argsJSON string) (string, error) {
	t, ok := ts.byName[name]
	if !ok {
		return "", fmt.Errorf("tool %s not found", name)
	}
	args := make(map[string]any)
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
			return "", fmt.Errorf("invalid arguments for tool %s: %w", name, err)
		}
	}
	return t.Call(ctx, args)
}

// remoteTool adapts a single advertised tool to the tool.Tool interface.
type remoteTool struct {
	client      Client
	name        string
	description string
	parameters  map[string]any
}

func (t *remoteTool) Name() string        { return t.name }
func (t *remoteTool) Description() string { return t.description }

func (t *remoteTool) Parameters() map[string]any {
	if t.parameters != nil {
		return t.parameters
	}
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

// Call performs the remote invocation and concatenates the text content of
// the response. Non-text content blocks are skipped.
func (t *remoteTool) Call(ctx context.Context, args map[string]any) (string, error) {
	resp, err := t.client.CallTool(ctx, t.name, args)
	if err != nil {
		return "", fmt.Errorf("call tool %s: %w", t.name, err)
	}
	var sb strings.Builder
	for _, c := range resp.Content {
		if c.TextContent != nil {
			sb.WriteString(c.TextContent.Text)
		}
	}
	return sb.String(), nil
}
