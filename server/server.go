// Package server exposes the agent layer over HTTP. The routing is thin on
// purpose: handlers decode JSON, call Execute and encode the response
// envelope. Agent failures travel inside the envelope with status 200; only
// malformed requests produce error statuses.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/FenadoAI/agentkit/agent"
	"github.com/FenadoAI/agentkit/logging"
)

// Options configure the Server.
type Options struct {
	Logger logging.Logger
}

// Server routes HTTP requests to the chat and search agents.
type Server struct {
	chat   agent.Agent
	search agent.Agent
	logger logging.Logger
	mux    *http.ServeMux
}

// New builds a Server around the two agent variants.
func New(chat, search agent.Agent, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		chat:   chat,
		search: search,
		logger: opts.Logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /api/{$}", s.handleRoot)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("POST /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/agents/capabilities", s.handleCapabilities)
	return s
}

// Handler returns the HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

// withRequestLog tags every request with a generated id and logs its duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http.request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// ChatRequest is the body accepted by POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	AgentType string `json:"agent_type,omitempty"` // "chat" (default) or "search"
}

// ChatResponse is the envelope returned by POST /api/chat.
type ChatResponse struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Error        string         `json:"error,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	agentType := req.AgentType
	if agentType == "" {
		agentType = "chat"
	}
	target := s.chat
	if agentType == "search" {
		target = s.search
	}

	resp := target.Execute(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, ChatResponse{
		Success:      resp.Success,
		Response:     resp.Content,
		AgentType:    agentType,
		Capabilities: target.Capabilities(),
		Metadata:     resp.Metadata,
		Error:        resp.Error,
	})
}

// SearchRequest is the body accepted by POST /api/search. MaxResults is
// accepted for wire compatibility with existing clients; the agent decides
// result breadth itself.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

// SearchResponse is the envelope returned by POST /api/search.
type SearchResponse struct {
	Success  bool           `json:"success"`
	Query    string         `json:"query"`
	Summary  string         `json:"summary"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := s.search.Execute(r.Context(), req.Query)
	writeJSON(w, http.StatusOK, SearchResponse{
		Success:  resp.Success,
		Query:    req.Query,
		Summary:  resp.Content,
		Metadata: resp.Metadata,
		Error:    resp.Error,
	})
}

// CapabilitiesResponse is the envelope returned by GET /api/agents/capabilities.
type CapabilitiesResponse struct {
	Success      bool                `json:"success"`
	Capabilities map[string][]string `json:"capabilities"`
}

func (s *Server) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CapabilitiesResponse{
		Success: true,
		Capabilities: map[string][]string{
			"chat_agent":   s.chat.Capabilities(),
			"search_agent": s.search.Capabilities(),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
