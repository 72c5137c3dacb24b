package report

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/gloss-flow/internal/signmap"
	"github.com/nguyentantai21042004/gloss-flow/internal/validator"
)

// Result is everything produced for one input.
type Result struct {
	Name        string             `json:"name"`
	Source      string             `json:"source,omitempty"`
	Transcript  string             `json:"original_transcript"`
	Gloss       string             `json:"asl_gloss"`
	Validation  *validator.Verdict `json:"validation,omitempty"`
	Language    string             `json:"language,omitempty"`
	Tone        string             `json:"tone,omitempty"`
	Gestures    []signmap.Gesture  `json:"gesture_sequence,omitempty"`
	Backend     string             `json:"transcriber,omitempty"`
	ProcessedAt time.Time          `json:"processed_at"`
	DurationMS  int64              `json:"duration_ms"`
}

// Writer persists results into the output directory.
type Writer interface {
	// Write returns the paths of the files it wrote.
	Write(ctx context.Context, res *Result) ([]string, error)
}
