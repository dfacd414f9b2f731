package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eventsnap/config"
	"eventsnap/internal/event"
	"eventsnap/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Event domain
	eventUC event.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Event domain
	EventUC event.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,
		eventUC:     cfg.EventUC,
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
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	return nil
}
