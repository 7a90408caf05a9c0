package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"intent-classifier/internal/classifier"
	"intent-classifier/internal/registry"
	"intent-classifier/internal/validation"
	"intent-classifier/pkg/gsheets"
	"intent-classifier/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Core domain
	registry  registry.Manager
	validator validation.Engine
	engine    classifier.Classifier

	// Optional Google Sheets reader for bulk imports
	sheets gsheets.ISheets

	// Tuning
	rateLimitPerMin int
	cacheSize       int
	cacheTTL        time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Registry  registry.Manager
	Validator validation.Engine
	Engine    classifier.Classifier

	// Sheets may be nil; the import endpoint then reports sheets as disabled.
	Sheets gsheets.ISheets

	RateLimitPerMin int
	CacheSize       int
	CacheTTL        time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		registry:        cfg.Registry,
		validator:       cfg.Validator,
		engine:          cfg.Engine,
		sheets:          cfg.Sheets,
		rateLimitPerMin: cfg.RateLimitPerMin,
		cacheSize:       cfg.CacheSize,
		cacheTTL:        cfg.CacheTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registry == nil {
		return errors.New("registry manager is required")
	}
	if srv.validator == nil {
		return errors.New("validation engine is required")
	}
	if srv.engine == nil {
		return errors.New("classifier engine is required")
	}
	return nil
}
