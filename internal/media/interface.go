package media

import "context"

// Demuxer pulls the audio track out of a video container.
type Demuxer interface {
	// ExtractAudio writes a 16-bit mono WAV for videoPath and returns its
	// path. The caller removes the file when done.
	ExtractAudio(ctx context.Context, videoPath string) (string, error)
}
