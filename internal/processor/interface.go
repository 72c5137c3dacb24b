package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/gloss-flow/internal/report"
)

// ErrUnsupported is returned for inputs whose kind the pipeline cannot handle.
var ErrUnsupported = errors.New("unsupported input")

// Processor runs inputs through transcription, glossing and reporting.
type Processor interface {
	// Process handles one video, audio or transcript file and archives it.
	Process(ctx context.Context, path string) error
	// ProcessText glosses an in-memory transcript. Nothing is written.
	ProcessText(ctx context.Context, name, transcript string) (*report.Result, error)
	// ProcessAll handles every supported file in dir.
	ProcessAll(ctx context.Context, dir string) error
}
