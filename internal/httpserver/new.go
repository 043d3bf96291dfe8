package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"inbox-workload/internal/ingest"
	workloadHTTP "inbox-workload/internal/workload/delivery/http"
	"inbox-workload/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Workload domain
	workloadHandler workloadHTTP.Handler

	// Inbound message webhook
	ingestHandler *ingest.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Workload domain
	WorkloadHandler workloadHTTP.Handler

	// Inbound message webhook
	IngestHandler *ingest.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		workloadHandler: cfg.WorkloadHandler,
		ingestHandler:   cfg.IngestHandler,
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
	if srv.workloadHandler == nil {
		return errors.New("workload handler is required")
	}
	return nil
}
