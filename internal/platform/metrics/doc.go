// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the service operations behind it. Every collector lives on a private
// registry so tests and multiple servers in one process never collide.
package metrics
