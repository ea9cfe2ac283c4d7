package web

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/platform/timeouts"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/app"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/modules"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/httpx"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage/sqlite"
	"github.com/rs/zerolog"
)

const generatedSecretBytes = 32

// Store is the registration persistence the server serves from.
type Store interface {
	modules.Store
	Close() error
}

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// DBPath is the SQLite file opened when Store is nil.
	DBPath string
	// Store overrides DBPath. The server does not close a supplied store.
	Store Store
	// SecretKey signs flash cookies. Empty means a random key per process,
	// so notices do not survive a restart.
	SecretKey           string
	TrustForwardedProto bool
	Logger              zerolog.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	handler    http.Handler
	store      Store
	ownsStore  bool
	logger     zerolog.Logger
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	store := config.Store
	ownsStore := false
	if store == nil {
		dbPath := strings.TrimSpace(config.DBPath)
		if dbPath == "" {
			return nil, errors.New("database path is required")
		}
		opened, err := sqlite.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open registration store: %w", err)
		}
		store = opened
		ownsStore = true
	}

	handler, err := buildHandler(config, store)
	if err != nil {
		if ownsStore {
			_ = store.Close()
		}
		return nil, err
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
			BaseContext:       func(net.Listener) context.Context { return config.Logger.WithContext(context.Background()) },
		},
		handler:   handler,
		store:     store,
		ownsStore: ownsStore,
		logger:    config.Logger,
	}, nil
}

func buildHandler(config Config, store Store) (http.Handler, error) {
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	secret, err := flashSecret(config.SecretKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(config.SecretKey) == "" {
		config.Logger.Warn().Msg("no secret key configured; flash notices will not survive a restart")
	}
	jar, err := flashnotice.NewJar(secret, policy)
	if err != nil {
		return nil, fmt.Errorf("build flash jar: %w", err)
	}

	root, err := app.BuildRootHandler(app.Config{
		Dependencies: modules.Dependencies{
			Store: store,
			Base:  publichandler.NewBase(publichandler.WithFlash(jar)),
		},
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RequestLogger(config.Logger),
		httpx.RecoverPanic(),
	), nil
}

func flashSecret(configured string) ([]byte, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		return []byte(configured), nil
	}
	secret := make([]byte, generatedSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate flash secret: %w", err)
	}
	return secret, nil
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	if s == nil {
		return http.NotFoundHandler()
	}
	return s.handler
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("web listening")
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the store when the server opened it.
func (s *Server) Close() {
	if s == nil || !s.ownsStore || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error().Err(err).Msg("close registration store")
	}
}
