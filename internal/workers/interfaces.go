// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs several
// workers concurrently until their context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the worker has no more work or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{ jobs <-chan string }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case job, ok := <-w.jobs:
//	            if !ok {
//	                return
//	            }
//	            process(job)
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}

// FaviconSink receives downloaded icons, typically the local bookmark model.
type FaviconSink interface {
	SetFavicon(pageURL string, data []byte) int
}
