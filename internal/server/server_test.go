package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/handler"
	httpHandler "github.com/MKhiriev/go-bookmark-merger/internal/handler/http"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/service"
	"github.com/MKhiriev/go-bookmark-merger/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stopWorker struct {
	stopped atomic.Bool
}

func (w *stopWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, nil, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsWorkersAndCallsOnShutdown(t *testing.T) {
	handlers := &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, logger.Nop())}
	w := &stopWorker{}
	var shutdownCalled atomic.Bool

	srv, err := NewServer(handlers, workers.NewWorkers(w), func() { shutdownCalled.Store(true) },
		config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.True(t, w.stopped.Load())
	assert.True(t, shutdownCalled.Load())
}
