package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jeongil-dev/llmsdoc"
	llmsdocmcp "github.com/jeongil-dev/llmsdoc/mcp"
)

// shutdownTimeout bounds graceful shutdown of the HTTP transport.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv, err := llmsdocmcp.NewServer(deps.Content, llmsdocmcp.WithLogger(deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.HTTP == "" {
		deps.Logger.Info("mcp server starting", slog.String("transport", "stdio"))
		return srv.Run(deps.Ctx)
	}

	return serveHTTP(deps.Ctx, c.HTTP, NewRouter(srv, deps.Content), deps.Logger)
}

// NewRouter mounts the MCP streamable HTTP handler at /mcp and a JSON
// health endpoint at /healthz.
func NewRouter(srv *llmsdocmcp.Server, content llmsdoc.ContentService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Health(r.Context()))
	})
	r.Handle("/mcp", srv.Handler())

	return r
}

func serveHTTP(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("mcp server starting", slog.String("transport", "http"), slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.Any("err", err))
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
