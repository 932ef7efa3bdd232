package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile exports the recorder's metrics in the Prometheus text
// exposition format, suitable for node_exporter's textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || p.registry == nil {
		return nil
	}
	return prom.WriteToTextfile(path, p.registry)
}
