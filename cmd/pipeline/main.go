package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/gloss"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/internal/media"
	"github.com/nguyentantai21042004/gloss-flow/internal/observe"
	"github.com/nguyentantai21042004/gloss-flow/internal/processor"
	"github.com/nguyentantai21042004/gloss-flow/internal/report"
	"github.com/nguyentantai21042004/gloss-flow/internal/signmap"
	"github.com/nguyentantai21042004/gloss-flow/internal/transcriber"
	"github.com/nguyentantai21042004/gloss-flow/internal/validator"
	"github.com/nguyentantai21042004/gloss-flow/internal/watcher"
	"github.com/nguyentantai21042004/gloss-flow/pkg/executor"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	envFile := flag.String("env", ".env", "dotenv file with API keys")
	once := flag.Bool("once", false, "process the files already in paths.input and exit")
	flag.Parse()

	if err := run(*configPath, *envFile, *once); err != nil {
		fmt.Fprintf(os.Stderr, "gloss-flow: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envFile string, once bool) error {
	// Load secrets before the config so ResolveSecrets sees them
	if err := config.LoadEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithWriter(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Gloss Pipeline %s", version)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	metrics, shutdownMetrics, err := setupMetrics(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("setup metrics: %w", err)
	}
	defer shutdownMetrics()

	proc, err := buildProcessor(cfg, metrics, log)
	if err != nil {
		return err
	}

	if once {
		return proc.ProcessAll(ctx, cfg.Paths.Input)
	}

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		SettleDelay:   cfg.Performance.SettleDelay,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Gloss Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Transcriber: %s, validator enabled: %t", cfg.Transcriber.Primary, cfg.Validator.Enabled)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	err = w.Start(ctx)
	log.Info(ctx, "Gloss Pipeline stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func buildProcessor(cfg *config.Config, metrics *observe.Metrics, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("create transcriber: %w", err)
	}
	v, err := validator.New(cfg.Validator, log)
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	deps := processor.Deps{
		Demuxer:     media.New(cfg, exec, log),
		Transcriber: tr,
		Gloss:       gloss.New(),
		Validator:   v,
		Report:      report.New(cfg.Paths.Output, cfg.Report.Docx, log),
		Metrics:     metrics,
		Logger:      log,
	}
	if cfg.Signs.MappingPath != "" {
		if deps.Signs, err = signmap.Load(cfg.Signs.MappingPath, cfg.Signs.SpaceKey); err != nil {
			return nil, err
		}
	}

	return processor.New(cfg, deps), nil
}

// setupMetrics serves Prometheus metrics when metrics.addr is set and
// records nothing otherwise.
func setupMetrics(ctx context.Context, cfg *config.Config, log logger.Logger) (*observe.Metrics, func(), error) {
	if cfg.Metrics.Addr == "" {
		return observe.Nop(), func() {}, nil
	}

	provider, err := observe.InitProvider("gloss-flow", version)
	if err != nil {
		return nil, nil, err
	}
	metrics, err := observe.NewMetrics(provider.MeterProvider)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		if err := observe.Serve(ctx, cfg.Metrics.Addr, provider.Handler, log); err != nil {
			log.Error(ctx, "Metrics server error: %v", err)
		}
	}()

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Warn(shutdownCtx, "Metrics shutdown: %v", err)
		}
	}
	return metrics, shutdown, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
