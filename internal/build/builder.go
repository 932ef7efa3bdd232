package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/openinstructions/catalogbuild/internal/catalog"
	"github.com/openinstructions/catalogbuild/internal/config"
	"github.com/openinstructions/catalogbuild/internal/history"
	"github.com/openinstructions/catalogbuild/internal/logfields"
	"github.com/openinstructions/catalogbuild/internal/manifest"
	"github.com/openinstructions/catalogbuild/internal/metrics"
	"github.com/openinstructions/catalogbuild/internal/render"
	"github.com/openinstructions/catalogbuild/internal/stage"
)

// textfileWriter is satisfied by recorders that can export their metrics
// to a Prometheus textfile.
type textfileWriter interface {
	WriteTextfile(path string) error
}

// Builder orchestrates the full catalog pipeline as a sequence of named
// stages. Validation failures demote the build to a warning; only
// environment errors (output directory setup, writes) are fatal.
type Builder struct {
	cfg      *config.Config
	log      *slog.Logger
	recorder metrics.Recorder
	store    history.Store
	now      func() time.Time
}

// NewBuilder creates a Builder with a no-op metrics recorder and no
// history store.
func NewBuilder(cfg *config.Config, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		cfg:      cfg,
		log:      log,
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
}

// WithRecorder injects a metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r != nil {
		b.recorder = r
	}
	return b
}

// WithHistory injects a build history store.
func (b *Builder) WithHistory(s history.Store) *Builder {
	b.store = s
	return b
}

// WithClock injects the time source used for the index timestamp and the
// report. Tests use this for deterministic output.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Run executes the pipeline. The returned report is never nil; err is
// non-nil only for fatal environment errors.
func (b *Builder) Run(ctx context.Context) (*manifest.BuildReport, error) {
	start := b.now()
	report := manifest.New(start)
	report.Inputs.InstructionDir = b.cfg.Paths.ProjectTypes
	report.Inputs.SchemaDir = b.cfg.Paths.Schemas
	report.Outputs.DistDir = b.cfg.Paths.Dist

	log := b.log.With(logfields.RunID(report.ID))
	log.Info("Starting catalog build")

	stager := stage.NewStager(b.cfg.Paths.Dist, log)
	discoverer := catalog.NewDiscoverer(log)
	loader := catalog.NewLoader(log)
	validator := catalog.NewValidator(loader, log)

	finish := func(name StageName, began time.Time, result metrics.ResultLabel, detail string) {
		d := time.Since(began)
		b.recorder.ObserveStageDuration(string(name), d)
		b.recorder.IncStageResult(string(name), result)
		report.AddStage(string(name), string(result), d, detail)
	}
	fatal := func(name StageName, began time.Time, err error) (*manifest.BuildReport, error) {
		finish(name, began, metrics.ResultFatal, err.Error())
		log.Error("Build stage failed", logfields.Stage(string(name)), logfields.Error(err))
		b.finishBuild(ctx, log, report, start, StatusFatal)
		return report, err
	}

	began := time.Now()
	log.Info("Preparing output directory", logfields.Stage(string(StagePrepareOutput)))
	if err := stager.PrepareOutput(); err != nil {
		return fatal(StagePrepareOutput, began, err)
	}
	finish(StagePrepareOutput, began, metrics.ResultSuccess, "")

	began = time.Now()
	instructions, err := discoverer.Instructions(b.cfg.Paths.ProjectTypes)
	if err != nil {
		return fatal(StageDiscover, began, err)
	}
	report.Inputs.FilesFound = len(instructions)
	b.recorder.SetFilesDiscovered(len(instructions))
	finish(StageDiscover, began, metrics.ResultSuccess, "")

	began = time.Now()
	valid, failures := validator.ValidateFiles(instructions)
	b.recorder.SetFilesValid(len(valid))
	b.recorder.SetFilesFailed(len(failures))
	for _, f := range failures {
		report.Failures = append(report.Failures, manifest.Failure{Path: f.Path, Reason: f.Reason})
	}
	if len(failures) > 0 {
		finish(StageValidate, began, metrics.ResultWarning, fmt.Sprintf("%d files failed validation", len(failures)))
	} else {
		finish(StageValidate, began, metrics.ResultSuccess, "")
	}

	began = time.Now()
	indexer := catalog.NewIndexer(b.cfg.Paths.ProjectTypes, config.CatalogFormatVersion, log).WithClock(b.now)
	index := indexer.BuildIndex(valid)
	report.Outputs.EntriesIndexed = index.EntryCount()
	report.Outputs.Categories = len(index.Projects)
	b.recorder.SetEntriesIndexed(index.EntryCount())
	finish(StageBuildIndex, began, metrics.ResultSuccess, "")

	began = time.Now()
	if err := stager.WriteIndex(index); err != nil {
		return fatal(StageWriteIndex, began, err)
	}
	finish(StageWriteIndex, began, metrics.ResultSuccess, "")

	began = time.Now()
	content := make([]string, 0, len(valid))
	for _, vf := range valid {
		content = append(content, vf.Path)
	}
	if err := stager.CopyFiles(content); err != nil {
		return fatal(StageCopyContent, began, err)
	}
	finish(StageCopyContent, began, metrics.ResultSuccess, "")

	began = time.Now()
	schemas, err := discoverer.Schemas(b.cfg.Paths.Schemas)
	if err != nil {
		return fatal(StageCopySchemas, began, err)
	}
	if err := stager.CopyFiles(schemas); err != nil {
		return fatal(StageCopySchemas, began, err)
	}
	finish(StageCopySchemas, began, metrics.ResultSuccess, "")

	began = time.Now()
	renderer, err := render.NewRenderer(b.cfg.Site, log)
	if err != nil {
		return fatal(StageRenderPages, began, err)
	}
	indexPage, err := renderer.RenderIndex(index)
	if err != nil {
		return fatal(StageRenderPages, began, err)
	}
	if err := stager.WriteFile(render.IndexPageName, indexPage); err != nil {
		return fatal(StageRenderPages, began, err)
	}
	specPage, err := renderer.RenderSpec()
	if err != nil {
		return fatal(StageRenderPages, began, err)
	}
	if err := stager.WriteFile(render.SpecPageName, specPage); err != nil {
		return fatal(StageRenderPages, began, err)
	}
	finish(StageRenderPages, began, metrics.ResultSuccess, "")

	began = time.Now()
	problems := b.verifyPages(log)
	if len(problems) > 0 {
		finish(StageVerifyPages, began, metrics.ResultWarning, fmt.Sprintf("%d broken links", len(problems)))
	} else {
		finish(StageVerifyPages, began, metrics.ResultSuccess, "")
	}

	status := StatusSuccess
	if len(failures) > 0 || len(problems) > 0 {
		status = StatusWarning
	}

	began = time.Now()
	report.Status = status
	report.Duration = time.Since(start).Milliseconds()
	reportJSON, err := report.ToJSON()
	if err != nil {
		return fatal(StageWriteReport, began, err)
	}
	if err := stager.WriteFile(manifest.ReportFileName, reportJSON); err != nil {
		return fatal(StageWriteReport, began, err)
	}
	finish(StageWriteReport, began, metrics.ResultSuccess, "")

	began = time.Now()
	if err := b.writeMetrics(); err != nil {
		log.Warn("Failed to write metrics file", logfields.Error(err))
		finish(StageWriteMetrics, began, metrics.ResultWarning, err.Error())
	} else {
		finish(StageWriteMetrics, began, metrics.ResultSuccess, "")
	}

	b.finishBuild(ctx, log, report, start, status)
	return report, nil
}

// verifyPages checks internal links on both generated pages. Problems
// are logged and reported, never fatal.
func (b *Builder) verifyPages(log *slog.Logger) []render.LinkProblem {
	var problems []render.LinkProblem
	for _, page := range []string{render.IndexPageName, render.SpecPageName} {
		found, err := render.VerifyLinks(b.cfg.Paths.Dist, page)
		if err != nil {
			log.Warn("Failed to verify page links", logfields.Path(page), logfields.Error(err))
			continue
		}
		problems = append(problems, found...)
	}
	for _, p := range problems {
		log.Warn("Broken internal link", logfields.Path(p.Page), logfields.Reason(p.URL))
	}
	return problems
}

// writeMetrics exports the recorder state to the configured textfile
// inside the output directory, when both are available.
func (b *Builder) writeMetrics() error {
	if !b.cfg.Metrics.Enabled {
		return nil
	}
	tw, ok := b.recorder.(textfileWriter)
	if !ok {
		return nil
	}
	return tw.WriteTextfile(filepath.Join(b.cfg.Paths.Dist, b.cfg.Metrics.File))
}

func (b *Builder) finishBuild(ctx context.Context, log *slog.Logger, report *manifest.BuildReport, start time.Time, status string) {
	duration := time.Since(start)
	report.Status = status
	report.Duration = duration.Milliseconds()
	b.recorder.ObserveBuildDuration(duration)
	b.recorder.SetLastBuildTimestamp(b.now())

	if b.store != nil {
		run := history.Run{
			ID:             report.ID,
			Timestamp:      report.Timestamp,
			Status:         status,
			DurationMS:     report.Duration,
			FilesFound:     report.Inputs.FilesFound,
			FilesValid:     report.Inputs.FilesFound - len(report.Failures),
			FilesFailed:    len(report.Failures),
			EntriesIndexed: report.Outputs.EntriesIndexed,
		}
		if err := b.store.Record(ctx, run); err != nil {
			log.Warn("Failed to record build history", logfields.Error(err))
		}
	}

	log.Info("Catalog build finished",
		logfields.Stage("done"),
		slog.String("status", status),
		logfields.Count(report.Outputs.EntriesIndexed),
		logfields.DurationMS(float64(duration.Milliseconds())),
	)
}
