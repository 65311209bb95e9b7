package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 5 * time.Second

	readyMessage = "hookrunner, ready for action!"
)

// ServerInfo is the payload of GET /.
type ServerInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Server receives webhook deliveries and turns pushes into synchronizations.
type Server struct {
	settings    *entities.Settings
	synchronize commands.Synchronize
	server      *http.Server
}

// NewServer creates a webhook server bound to settings.BindAddress.
func NewServer(settings *entities.Settings, synchronize commands.Synchronize) *Server {
	return &Server{
		settings:    settings,
		synchronize: synchronize,
	}
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	//nolint:exhaustruct // git operations have no upper bound, so no write timeout
	s.server = &http.Server{
		Addr:              s.settings.BindAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		IdleTimeout:       idleTimeout,
	}

	if !s.settings.SignatureRequired() {
		logger.Warn("No webhook secret configured, signature verification is disabled")
	}
	logger.Infof("Webhook server listening on %s (hook path %s)", s.settings.BindAddress, s.settings.HookPath)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Webhook server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("webhook server error: %w", err)
	}
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleInfo)
	r.With(SignatureGuard(s.settings.WebhookSecret, s.settings.MaxBodyBytes)).
		Post(s.settings.HookPath, NewEventRouter(s.settings, s.synchronize).ServeHTTP)

	return r
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, ServerInfo{Message: readyMessage, Version: entities.Version})
}

// loggingMiddleware logs one line per request, without bodies, and echoes the
// delivery id (generated when the sender did not provide one).
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		delivery := r.Header.Get(DeliveryHeader)
		if delivery == "" {
			delivery = uuid.NewString()
		}
		w.Header().Set(DeliveryHeader, delivery)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.WithFields(logger.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
			"delivery":    delivery,
			"event":       r.Header.Get(EventHeader),
		}).Info("Webhook request")
	})
}
