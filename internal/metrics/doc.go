// Package metrics provides observability hooks for catalog build metrics.
//
// The package implements the Null Object pattern: components receive a
// Recorder through dependency injection and default to NoopRecorder, so
// metrics collection never requires nil checks in the pipeline. When
// metrics are enabled, a PrometheusRecorder is injected instead and its
// registry is exported once per build as a Prometheus textfile in the
// dist directory, ready for a node_exporter textfile collector. The
// build itself opens no network listener.
package metrics
