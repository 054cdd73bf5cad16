package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/helium/helium-tools-api/config"
	"github.com/helium/helium-tools-api/pkg/logger"
	"github.com/helium/helium-tools-api/supply"
)

// Transcoder converts addresses between families. *addrconv.Transcoder satisfies it.
type Transcoder interface {
	Convert(address, target string) (string, error)
	MaybeConvert(address, target string) (string, bool)
}

// SupplyReader reports token supply figures. *supply.Service satisfies it.
type SupplyReader interface {
	Supply(ctx context.Context, tok supply.Token, kind supply.Kind) float64
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics registers the HTTP collectors with reg and serves it on /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// Server is the public HTTP API.
type Server struct {
	cfg        config.ServerConfig
	transcoder Transcoder
	supply     SupplyReader
	tokens     supply.Tokens
	lggr       logger.Logger

	registry *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
}

// NewServer wires the routes and middleware.
func NewServer(
	cfg config.ServerConfig,
	transcoder Transcoder,
	supplyReader SupplyReader,
	tokens supply.Tokens,
	lggr logger.Logger,
	opts ...Option,
) (*Server, error) {
	s := &Server{
		cfg:        cfg,
		transcoder: transcoder,
		supply:     supplyReader,
		tokens:     tokens,
		lggr:       lggr.Named("api"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.registry != nil {
		m, err := NewMetrics(s.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		s.metrics = m
	}

	s.handler = withRequestID(withObservability(s.lggr, s.metrics, s.routes()))

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tools/address", s.handleAddress)
	mux.HandleFunc("GET /api/stats/supply/{token}", s.handleSupply)

	mux.HandleFunc("GET /accounts/{address}", s.handleLegacyAccount)
	mux.HandleFunc("GET /accounts/{address}/{rest...}", s.handleLegacyAccount)
	mux.HandleFunc("GET /hotspots/{address}", s.handleLegacyHotspot)
	mux.HandleFunc("GET /hotspots/{address}/{rest...}", s.handleLegacyHotspot)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))
	}

	mux.HandleFunc("/", s.handleFallback)

	return mux
}

// Handler returns the root handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// MaxHeaderBytes bounds the request line and headers, and with them the length of any address
// handed to a decoder.
const MaxHeaderBytes = 8 << 10

// Run listens on the configured port and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully, giving
// in-flight requests up to the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    MaxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.lggr.Infow("Listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.lggr.Infow("Shutting down", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
