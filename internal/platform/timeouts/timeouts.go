// Package timeouts defines shared timeout constants used across the
// portal. Centralizing these values prevents drift between boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CatalogFetch caps a single tenant catalog fetch from a remote source.
const CatalogFetch = 10 * time.Second
