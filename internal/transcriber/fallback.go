package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type fallback struct {
	primary   Transcriber
	secondary Transcriber
	logger    logger.Logger
}

// NewFallback tries primary first and secondary when primary fails.
func NewFallback(primary, secondary Transcriber, log logger.Logger) Transcriber {
	return &fallback{primary: primary, secondary: secondary, logger: log}
}

func (f *fallback) Name() string {
	return f.primary.Name() + "+" + f.secondary.Name()
}

func (f *fallback) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	t, err := f.primary.Transcribe(ctx, audioPath)
	if err == nil {
		return t, nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", f.primary.Name(), err)
	}

	f.logger.Warn(ctx, "Transcriber %s failed, trying %s: %v", f.primary.Name(), f.secondary.Name(), err)

	t, fbErr := f.secondary.Transcribe(ctx, audioPath)
	if fbErr != nil {
		return nil, fmt.Errorf("primary %q failed (%v), fallback %q also failed: %w",
			f.primary.Name(), err, f.secondary.Name(), fbErr)
	}
	return t, nil
}
