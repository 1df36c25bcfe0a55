// Package http implements the HTTP API of the bookmark merger.
//
// Routes expose the application version, the merged bookmark tree, the
// tracked sync entities and the initial merge itself. Request tracing and
// access logging run as middleware in front of every handler.
package http
