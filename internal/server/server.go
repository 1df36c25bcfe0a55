package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/handler"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	// onShutdown runs after the HTTP server stopped and before the workers
	// are awaited, e.g. to close the favicon queue.
	onShutdown func()

	logger *logger.Logger
}

// NewServer builds the HTTP server. bg may be nil; onShutdown may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, onShutdown func(), cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		onShutdown: onShutdown,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	if s.onShutdown != nil {
		s.onShutdown()
	}
}

func (s *server) run(ctx context.Context) {
	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(workersCtx)
		}()
	}

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-ctx.Done()
	s.Shutdown()

	// queued favicons are dropped on shutdown
	cancelWorkers()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
