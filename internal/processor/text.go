package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/report"
)

// Verdict labels recorded in metrics.
const (
	verdictValid     = "valid"
	verdictCorrected = "corrected"
	verdictError     = "error"
)

func (p *implProcessor) ProcessText(ctx context.Context, name, transcript string) (*report.Result, error) {
	if name == "" {
		return nil, fmt.Errorf("process text: empty name")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	res := &report.Result{
		Name:        name,
		Transcript:  transcript,
		ProcessedAt: startTime,
	}

	glossStart := time.Now()
	res.Gloss = p.gloss.Transform(transcript)
	p.metrics.RecordStage(ctx, stageGloss, time.Since(glossStart))
	p.logger.Debug(ctx, "Gloss for %s: %q -> %q", name, transcript, res.Gloss)

	// Advisory steps: failures are logged and the rule-based gloss stays.
	if p.validator != nil && res.Gloss != "" {
		p.validate(ctx, res)
	}

	if p.signs != nil {
		signStart := time.Now()
		res.Gestures = p.signs.Sequence(res.Gloss)
		p.metrics.RecordStage(ctx, stageSigns, time.Since(signStart))
	}

	res.DurationMS = time.Since(startTime).Milliseconds()
	return res, nil
}

func (p *implProcessor) validate(ctx context.Context, res *report.Result) {
	start := time.Now()
	defer func() { p.metrics.RecordStage(ctx, stageValidate, time.Since(start)) }()

	verdict, err := p.validator.CheckGloss(ctx, res.Transcript, res.Gloss)
	switch {
	case err != nil:
		p.metrics.RecordVerdict(ctx, verdictError)
		p.logger.Warn(ctx, "Gloss validation failed for %s: %v", res.Name, err)
	case verdict.Valid:
		p.metrics.RecordVerdict(ctx, verdictValid)
		res.Validation = verdict
	default:
		p.metrics.RecordVerdict(ctx, verdictCorrected)
		p.logger.Info(ctx, "Validator suggests %q for %s (rule-based %q)", verdict.Gloss, res.Name, res.Gloss)
		res.Validation = verdict
	}

	if p.cfg.Validator.DetectLanguage {
		if lang, err := p.validator.DetectLanguage(ctx, res.Transcript); err != nil {
			p.logger.Warn(ctx, "Language detection failed for %s: %v", res.Name, err)
		} else {
			res.Language = lang
		}
	}
	if p.cfg.Validator.DetectTone {
		if tone, err := p.validator.DetectTone(ctx, res.Transcript); err != nil {
			p.logger.Warn(ctx, "Tone detection failed for %s: %v", res.Name, err)
		} else {
			res.Tone = tone
		}
	}
}
