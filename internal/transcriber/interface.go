// Package transcriber turns audio files into transcript text using either a
// local whisper.cpp binary or an OpenAI-compatible transcription API.
package transcriber

import (
	"context"
	"errors"
)

// ErrNoBackend is returned when no transcription backend is configured.
var ErrNoBackend = errors.New("transcriber: no backend configured")

// Transcript is the text recognized in one audio file.
type Transcript struct {
	Text     string
	Language string
	Backend  string
}

// Transcriber converts an audio file to text.
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, audioPath string) (*Transcript, error)
}
