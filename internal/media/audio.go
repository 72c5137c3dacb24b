package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ExtractAudio extracts audio from video file and converts to mono WAV at
// the configured sample rate, the format whisper expects.
func (d *implDemuxer) ExtractAudio(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(d.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(d.tempDir, base+"_audio.wav")

	d.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: drop video, -ac 1: mono, -c:a pcm_s16le: 16-bit PCM,
	// -threads 0: all cores, -y: overwrite
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(d.sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := d.executor.Execute(ctx, d.binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	d.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
