package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/media"
	"github.com/nguyentantai21042004/gloss-flow/internal/observe"
)

// Pipeline stage names used for metrics.
const (
	stageDemux      = "demux"
	stageTranscribe = "transcribe"
	stageGloss      = "gloss"
	stageValidate   = "validate"
	stageSigns      = "signs"
	stageReport     = "report"
)

// Process orchestrates the entire pipeline for one input file
func (p *implProcessor) Process(ctx context.Context, path string) (err error) {
	startTime := time.Now()
	kind := media.KindOf(path)
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	defer func() {
		status := observe.StatusSuccess
		if err != nil {
			status = observe.StatusFailed
		}
		p.metrics.RecordJob(ctx, kind.String(), status)
	}()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting %s processing: %s", kind, path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Get the transcript
	t, err := p.transcript(ctx, path, kind)
	if err != nil {
		return err
	}

	// Step 2: Gloss, validate and map signs
	res, err := p.ProcessText(ctx, name, t.Text)
	if err != nil {
		return err
	}
	res.Source = path
	res.Backend = t.Backend
	if res.Language == "" {
		res.Language = t.Language
	}
	res.ProcessedAt = startTime
	res.DurationMS = time.Since(startTime).Milliseconds()

	// Step 3: Write the report
	var written []string
	if p.report != nil {
		reportStart := time.Now()
		written, err = p.report.Write(ctx, res)
		p.metrics.RecordStage(ctx, stageReport, time.Since(reportStart))
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	// Step 4: Move the input to the archived folder
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Gloss: %s", res.Gloss)
	for _, w := range written {
		p.logger.Info(ctx, "Output: %s", w)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}
