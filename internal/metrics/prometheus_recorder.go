package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry *prom.Registry

	stageDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	stageResults    *prom.CounterVec
	filesDiscovered prom.Gauge
	filesValid      prom.Gauge
	filesFailed     prom.Gauge
	entriesIndexed  prom.Gauge
	lastBuild       prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "catalogbuild",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual build stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "catalogbuild",
		Name:      "build_duration_seconds",
		Help:      "Total build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "catalogbuild",
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.filesDiscovered = prom.NewGauge(prom.GaugeOpts{
		Namespace: "catalogbuild",
		Name:      "files_discovered",
		Help:      "Instruction files discovered in the last build",
	})
	pr.filesValid = prom.NewGauge(prom.GaugeOpts{
		Namespace: "catalogbuild",
		Name:      "files_valid",
		Help:      "Instruction files that passed validation in the last build",
	})
	pr.filesFailed = prom.NewGauge(prom.GaugeOpts{
		Namespace: "catalogbuild",
		Name:      "files_failed",
		Help:      "Instruction files that failed validation in the last build",
	})
	pr.entriesIndexed = prom.NewGauge(prom.GaugeOpts{
		Namespace: "catalogbuild",
		Name:      "entries_indexed",
		Help:      "Catalog entries present in the last generated index",
	})
	pr.lastBuild = prom.NewGauge(prom.GaugeOpts{
		Namespace: "catalogbuild",
		Name:      "last_build_timestamp_seconds",
		Help:      "Unix timestamp of the last completed build",
	})
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults,
		pr.filesDiscovered, pr.filesValid, pr.filesFailed, pr.entriesIndexed, pr.lastBuild)
	return pr
}

// Registry exposes the backing registry for textfile export.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) SetFilesDiscovered(n int) {
	if p == nil || p.filesDiscovered == nil {
		return
	}
	p.filesDiscovered.Set(float64(n))
}

func (p *PrometheusRecorder) SetFilesValid(n int) {
	if p == nil || p.filesValid == nil {
		return
	}
	p.filesValid.Set(float64(n))
}

func (p *PrometheusRecorder) SetFilesFailed(n int) {
	if p == nil || p.filesFailed == nil {
		return
	}
	p.filesFailed.Set(float64(n))
}

func (p *PrometheusRecorder) SetEntriesIndexed(n int) {
	if p == nil || p.entriesIndexed == nil {
		return
	}
	p.entriesIndexed.Set(float64(n))
}

func (p *PrometheusRecorder) SetLastBuildTimestamp(t time.Time) {
	if p == nil || p.lastBuild == nil {
		return
	}
	p.lastBuild.Set(float64(t.Unix()))
}
