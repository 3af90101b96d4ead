package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/simpletalk/internal/processor"
)

// Pipeline is the part of the processor the handlers call.
type Pipeline interface {
	Romanize(text string) string
	EasyKorean(ctx context.Context, text string) (*processor.Result, error)
}

// Speaker synthesizes text into a file inside the served audio directory.
type Speaker interface {
	Speak(ctx context.Context, text string) (string, error)
}

// Config configures the HTTP server.
type Config struct {
	Addr            string
	BaseURL         string
	AudioDir        string
	CORS            CORSConfig
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Server is the SimpleTalk HTTP API.
type Server struct {
	cfg      Config
	pipeline Pipeline
	speaker  Speaker
	log      *slog.Logger
	engine   *gin.Engine
}

// New builds the router. It does not start listening.
func New(cfg Config, pipeline Pipeline, speaker Speaker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.CORS.AllowedOrigins == nil {
		cfg.CORS = DefaultCORSConfig()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		speaker:  speaker,
		log:      logger.With("component", "server"),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(s.log), Recovery(s.log), CORS(s.cfg.CORS))

	r.GET("/", s.handleRoot)
	r.GET("/healthz", s.handleHealth)
	r.POST("/romanize", s.handleRomanize)
	r.POST("/speak", s.handleSpeak)
	r.POST("/translate-to-easy-korean", s.handleEasyKorean)
	r.Static("/tts", s.cfg.AudioDir)

	return r
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr, "base_url", s.cfg.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
