// Command agentd serves the AgentKit HTTP API. All configuration comes from
// the environment; see the config package for variables and defaults.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FenadoAI/agentkit/agent"
	"github.com/FenadoAI/agentkit/config"
	"github.com/FenadoAI/agentkit/logging"
	"github.com/FenadoAI/agentkit/server"
)

func main() {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()

	chat := agent.NewChatAgent(cfg, agent.WithLogger(logger))
	search := agent.NewSearchAgent(ctx, cfg, agent.WithLogger(logger))

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8000"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(chat, search, func(o *server.Options) { o.Logger = logger }).Handler(),
	}

	go func() {
		logger.Info("server.listen", "addr", addr, "model", cfg.ModelName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server.failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server.shutdown", "error", err.Error())
	}
	logger.Info("server.stopped")
}
