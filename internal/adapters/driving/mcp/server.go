package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// DefaultRateLimit is the number of HTTP requests per second accepted when none is configured.
const DefaultRateLimit = 10

// Server is the MCP server for the barangay records store.
type Server struct {
	ports     *Ports
	server    *mcp.Server
	rateLimit float64
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit sets the HTTP requests per second. Values of zero or less keep the default.
func WithRateLimit(perSecond int) Option {
	return func(s *Server) {
		if perSecond > 0 {
			s.rateLimit = float64(perSecond)
		}
	}
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if ports == nil {
		return nil, fmt.Errorf("validating ports: %w", ErrMissingService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "barangay",
		Version: Version,
	}

	s := &Server{
		ports:     ports,
		server:    mcp.NewServer(impl, nil),
		rateLimit: DefaultRateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler, rate limited.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
	return rateLimited(rate.NewLimiter(rate.Limit(s.rateLimit), int(s.rateLimit)+1), handler)
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("mcp server listening on http://%s (%.0f req/s)", addr, s.rateLimit)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// rateLimited rejects requests beyond the limiter's budget with 429.
func rateLimited(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Warn("mcp http request from %s rejected: rate limit exceeded", r.RemoteAddr)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
