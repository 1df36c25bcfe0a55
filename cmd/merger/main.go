// Command merger runs the initial bookmark merge once: it restores the
// local tree from the database, fetches remote updates from the configured
// source, merges them, persists the result and prints the report together
// with the merged tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/internal/app"
	"github.com/MKhiriev/go-bookmark-merger/internal/config"
	"github.com/MKhiriev/go-bookmark-merger/internal/logger"
	"github.com/MKhiriev/go-bookmark-merger/internal/render"
	"github.com/MKhiriev/go-bookmark-merger/internal/service"
	"github.com/MKhiriev/go-bookmark-merger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// faviconGracePeriod bounds how long queued favicon downloads may run after
// the merge.
const faviconGracePeriod = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewConsoleLogger("bookmark-merger")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return err
	}
	defer application.Close()

	syncService := application.Services.InitialSyncService
	if err = syncService.Restore(ctx); err != nil {
		return fmt.Errorf("error restoring bookmarks: %w", err)
	}

	workersCtx, cancelWorkers := context.WithTimeout(ctx, faviconGracePeriod)
	defer cancelWorkers()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		application.Workers.Run(workersCtx)
	}()

	report, err := syncService.SyncFromSource(ctx)
	switch {
	case errors.Is(err, service.ErrAlreadySynced):
		log.Warn().Msg("bookmarks are already synced, nothing to merge")
	case err != nil:
		application.Services.FaviconQueue.Close()
		cancelWorkers()
		wg.Wait()
		return err
	default:
		fmt.Println(render.Report(report))
	}

	// workers exit once the closed queue is drained
	application.Services.FaviconQueue.Close()
	wg.Wait()

	fmt.Println(render.Tree(syncService.Bookmarks(ctx)))
	return nil
}
