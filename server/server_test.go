package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenadoAI/agentkit/agent"
	"github.com/FenadoAI/agentkit/config"
	"github.com/FenadoAI/agentkit/model"
)

func newTestServer(t *testing.T) (*Server, *model.MockModel, *model.MockModel) {
	t.Helper()
	t.Setenv(config.EnvSearchToolToken, "")

	cfg := config.Config{
		BaseURL:   "https://llm.test.local",
		ModelName: "test-model",
		APIKey:    "test-key",
		Provider:  "openai",
	}
	chatModel := model.NewMockModel("test-model", "openai")
	searchModel := model.NewMockModel("test-model", "openai")

	chat := agent.NewChatAgent(cfg, func(o *agent.Options) { o.Model = chatModel })
	search := agent.NewSearchAgent(t.Context(), cfg, func(o *agent.Options) { o.Model = searchModel })
	return New(chat, search), chatModel, searchModel
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hello World", body["message"])
}

func TestChatEndpoint(t *testing.T) {
	srv, chatModel, _ := newTestServer(t)
	chatModel.AddResponse("What is 2+2?", "2+2 equals 4.")

	rec := postJSON(t, srv.Handler(), "/api/chat", `{"message":"What is 2+2?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Response, "4")
	assert.Equal(t, "chat", resp.AgentType)
	assert.Contains(t, resp.Capabilities, "conversation")
	assert.Equal(t, "test-model", resp.Metadata["model"])
	assert.Empty(t, resp.Error)
}

func TestChatEndpointRoutesToSearchAgent(t *testing.T) {
	srv, _, searchModel := newTestServer(t)
	searchModel.AddResponse("latest Go release", "Go 1.24 is current.")

	rec := postJSON(t, srv.Handler(), "/api/chat",
		`{"message":"latest Go release","agent_type":"search"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "search", resp.AgentType)
	assert.Contains(t, resp.Response, "Go 1.24")
}

func TestChatEndpointAgentFailure(t *testing.T) {
	srv, chatModel, _ := newTestServer(t)
	chatModel.FailWith(assert.AnError)

	rec := postJSON(t, srv.Handler(), "/api/chat", `{"message":"hello"}`)

	// Agent failures stay inside the envelope.
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Response)
	assert.NotEmpty(t, resp.Error)
}

func TestChatEndpointInvalidJSON(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/chat", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestSearchEndpoint(t *testing.T) {
	srv, _, searchModel := newTestServer(t)
	searchModel.AddResponse("capital of France", "The capital of France is Paris.")

	rec := postJSON(t, srv.Handler(), "/api/search",
		`{"query":"capital of France","max_results":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "capital of France", resp.Query)
	assert.Contains(t, resp.Summary, "Paris")
	assert.Empty(t, resp.Error)
}

func TestSearchEndpointInvalidJSON(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/search", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCapabilitiesEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/agents/capabilities", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CapabilitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Capabilities["chat_agent"], "text_generation")
	assert.Contains(t, resp.Capabilities["search_agent"], "text_generation")
	// No tool provider configured in tests.
	assert.NotContains(t, resp.Capabilities["search_agent"], "mcp_enabled")
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chat", strings.NewReader(""))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
