// Package timeouts defines shared timeout constants used across processes.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing a response, CSV exports included.
const Write = 30 * time.Second

// Idle bounds keep-alive connections between requests.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
