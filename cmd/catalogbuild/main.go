package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/openinstructions/catalogbuild/internal/build"
	"github.com/openinstructions/catalogbuild/internal/catalog"
	"github.com/openinstructions/catalogbuild/internal/config"
	"github.com/openinstructions/catalogbuild/internal/history"
	"github.com/openinstructions/catalogbuild/internal/logfields"
	"github.com/openinstructions/catalogbuild/internal/metrics"
	"github.com/openinstructions/catalogbuild/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"catalogbuild.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct{} `cmd:"" help:"Build the catalog index, pages and staged files"`

	Validate struct{} `cmd:"" help:"Validate instruction files without building"`

	Discover struct{} `cmd:"" help:"List instruction and schema files without building"`

	Watch struct{} `cmd:"" help:"Rebuild the catalog whenever source files change"`

	History struct {
		Limit int `short:"n" help:"Number of runs to show" default:"10"`
	} `cmd:"" help:"Show recent build runs"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", logfields.Error(err))
		os.Exit(1)
	}

	switch ctx.Command() {
	case "build":
		if err := runBuild(context.Background(), cfg, logger); err != nil {
			slog.Error("Build failed", logfields.Error(err))
			os.Exit(1)
		}
	case "validate":
		if err := runValidate(cfg, logger); err != nil {
			os.Exit(1)
		}
	case "discover":
		if err := runDiscover(cfg, logger); err != nil {
			slog.Error("Discovery failed", logfields.Error(err))
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(cfg, logger); err != nil {
			slog.Error("Watch failed", logfields.Error(err))
			os.Exit(1)
		}
	case "history":
		if err := runHistory(cfg, CLI.History.Limit); err != nil {
			slog.Error("History failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

func newBuilder(cfg *config.Config, logger *slog.Logger) (*build.Builder, func()) {
	builder := build.NewBuilder(cfg, logger)
	cleanup := func() {}

	if cfg.Metrics.Enabled {
		builder = builder.WithRecorder(metrics.NewPrometheusRecorder(nil))
	}
	if cfg.History.Enabled {
		store, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			logger.Warn("Build history disabled", logfields.Error(err))
		} else {
			builder = builder.WithHistory(store)
			cleanup = func() { _ = store.Close() }
		}
	}
	return builder, cleanup
}

// runBuild executes one complete build. Validation failures are reported
// in the logs and the build report but do not affect the exit code; only
// environment errors do.
func runBuild(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	builder, cleanup := newBuilder(cfg, logger)
	defer cleanup()

	report, err := builder.Run(ctx)
	if err != nil {
		return err
	}
	slog.Info("Catalog written",
		logfields.Path(cfg.Paths.Dist),
		logfields.Count(report.Outputs.EntriesIndexed),
		slog.String("status", report.Status))
	return nil
}

func runValidate(cfg *config.Config, logger *slog.Logger) error {
	discoverer := catalog.NewDiscoverer(logger)
	files, err := discoverer.Instructions(cfg.Paths.ProjectTypes)
	if err != nil {
		return err
	}
	validator := catalog.NewValidator(catalog.NewLoader(logger), logger)
	valid, failures := validator.ValidateFiles(files)

	fmt.Printf("%d files checked, %d valid, %d failed\n", len(files), len(valid), len(failures))
	for _, f := range failures {
		fmt.Printf("  %s: %s\n", f.Path, f.Reason)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d files failed validation", len(failures))
	}
	return nil
}

func runDiscover(cfg *config.Config, logger *slog.Logger) error {
	discoverer := catalog.NewDiscoverer(logger)

	instructions, err := discoverer.Instructions(cfg.Paths.ProjectTypes)
	if err != nil {
		return err
	}
	schemas, err := discoverer.Schemas(cfg.Paths.Schemas)
	if err != nil {
		return err
	}

	fmt.Printf("Instruction files (%d):\n", len(instructions))
	for _, p := range instructions {
		fmt.Printf("  %s\n", p)
	}
	fmt.Printf("Schema files (%d):\n", len(schemas))
	for _, p := range schemas {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func runWatch(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder, cleanup := newBuilder(cfg, logger)
	defer cleanup()

	rebuild := func(ctx context.Context) error {
		_, err := builder.Run(ctx)
		return err
	}
	// Initial build before watching so the output is never stale.
	if err := rebuild(ctx); err != nil {
		return err
	}

	roots := []string{cfg.Paths.ProjectTypes, cfg.Paths.Schemas}
	err := watch.New(roots, rebuild, logger).Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runHistory(cfg *config.Config, limit int) error {
	store, err := history.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded builds")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %-7s  %4dms  found=%d valid=%d failed=%d indexed=%d  %s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.Status, r.DurationMS,
			r.FilesFound, r.FilesValid, r.FilesFailed, r.EntriesIndexed, r.ID)
	}
	return nil
}
