// Package server provides the HTTP REST API for resume and cover letter
// management, rendering, and compatibility scoring.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/ai"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/ats"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/config"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/db"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/server/ratelimit"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	registry    *template.Registry
	letters     *template.LetterRenderer
	scorer      *ats.Scorer
	suggester   *ai.Suggester
	rateLimiter *ratelimit.Limiter
	watcher     *template.Watcher
	logger      *zap.Logger
}

// New creates a server from the application configuration.
func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pdf := template.PDFSettings{PageSize: cfg.PageSize}
	registry, err := template.NewRegistry(pdf)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultTemplate != "" {
		if err := registry.SetDefault(cfg.DefaultTemplate); err != nil {
			return nil, err
		}
	}

	letters, err := template.NewLetterRenderer(pdf)
	if err != nil {
		return nil, err
	}

	s := &Server{
		db:          database,
		registry:    registry,
		letters:     letters,
		scorer:      ats.NewScorer(ats.Options{}),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		logger:      logger,
	}

	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		s.suggester = ai.NewSuggester(client)
	} else {
		s.suggester = ai.NewSuggester(nil)
		logger.Info("no Gemini API key configured, AI suggestions disabled")
	}

	if cfg.TemplatesDir != "" {
		watcher, err := template.NewWatcher(registry, cfg.TemplatesDir, pdf, logger)
		if err != nil {
			return nil, err
		}
		s.watcher = watcher
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withCORS(s.withLogging(s.withRateLimit(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Templates
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /templates/{id}", s.handleGetTemplate)

	// Resume CRUD
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	// Rendering and artifacts
	mux.HandleFunc("POST /render", s.handleRenderInline)
	mux.HandleFunc("POST /resumes/{id}/render", s.handleRenderResume)
	mux.HandleFunc("POST /resumes/{id}/export", s.handleExportResume)
	mux.HandleFunc("GET /resumes/{id}/artifacts", s.handleListResumeArtifacts)
	mux.HandleFunc("GET /resumes/{id}/artifacts/{template}/{format}", s.handleGetResumeArtifact)

	// Scoring
	mux.HandleFunc("POST /score", s.handleScoreInline)
	mux.HandleFunc("POST /resumes/{id}/score", s.handleScoreResume)
	mux.HandleFunc("GET /resumes/{id}/report", s.handleGetResumeReport)

	// Cover letter CRUD and rendering
	mux.HandleFunc("POST /letters", s.handleCreateLetter)
	mux.HandleFunc("GET /letters", s.handleListLetters)
	mux.HandleFunc("GET /letters/{id}", s.handleGetLetter)
	mux.HandleFunc("PUT /letters/{id}", s.handleUpdateLetter)
	mux.HandleFunc("DELETE /letters/{id}", s.handleDeleteLetter)
	mux.HandleFunc("POST /letters/{id}/render", s.handleRenderLetter)

	// AI suggestions
	mux.HandleFunc("POST /ai/summary", s.handleSuggestSummary)
	mux.HandleFunc("POST /ai/bullet", s.handleRewriteBullet)
	mux.HandleFunc("POST /ai/keywords", s.handleSuggestKeywords)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if s.watcher != nil {
		go func() {
			if err := s.watcher.Run(watchCtx); err != nil && err != context.Canceled {
				s.logger.Error("template watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// withRateLimit adds rate limiting.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime))
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
