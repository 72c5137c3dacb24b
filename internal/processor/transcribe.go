package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/media"
	"github.com/nguyentantai21042004/gloss-flow/internal/transcriber"
)

const backendFile = "file"

// transcript produces the text for path according to its kind.
func (p *implProcessor) transcript(ctx context.Context, path string, kind media.Kind) (*transcriber.Transcript, error) {
	switch kind {
	case media.KindVideo:
		if p.demuxer == nil {
			return nil, fmt.Errorf("extract audio: no demuxer configured")
		}
		start := time.Now()
		audioPath, err := p.demuxer.ExtractAudio(ctx, path)
		p.metrics.RecordStage(ctx, stageDemux, time.Since(start))
		if err != nil {
			return nil, fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, audioPath)
		return p.transcribe(ctx, audioPath)

	case media.KindAudio:
		return p.transcribe(ctx, path)

	case media.KindTranscript:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
		return &transcriber.Transcript{
			Text:    strings.TrimSpace(string(data)),
			Backend: backendFile,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
}

func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (*transcriber.Transcript, error) {
	if p.transcriber == nil {
		return nil, fmt.Errorf("transcribe: %w", transcriber.ErrNoBackend)
	}

	start := time.Now()
	t, err := p.transcriber.Transcribe(ctx, audioPath)
	p.metrics.RecordStage(ctx, stageTranscribe, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	if t.Text == "" {
		p.logger.Warn(ctx, "Transcriber %s returned no speech for %s", t.Backend, audioPath)
	}
	return t, nil
}
