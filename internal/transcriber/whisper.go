package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/pkg/executor"
)

type whisperCLI struct {
	cfg      config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCLI creates a Transcriber that shells out to whisper.cpp.
func NewWhisperCLI(cfg config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperCLI{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

func (w *whisperCLI) Name() string {
	return config.BackendWhisperCLI
}

// Transcribe runs whisper with plain text output and reads the result back.
func (w *whisperCLI) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	// Whisper appends .txt to the prefix
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outputPrefix := filepath.Join(w.tempDir, base+"_transcript")

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, w.args(audioPath, outputPrefix)...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	if err := os.Remove(txtPath); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", txtPath, err)
	}

	text := joinSegments(string(data))
	w.logger.Info(ctx, "Transcription completed: %d characters", len(text))

	return &Transcript{
		Text:     text,
		Language: w.cfg.Language,
		Backend:  w.Name(),
	}, nil
}

// args builds the whisper-cli flags.
// -otxt: plain text output, -l: forced language, -t: threads,
// -ng: disable GPU, --output-file: output prefix
func (w *whisperCLI) args(audioPath, outputPrefix string) []string {
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}
	if !w.cfg.UseGPU {
		args = append(args, "-ng")
	}
	return append(args, "--output-file", outputPrefix)
}

// joinSegments flattens whisper's one-segment-per-line output.
func joinSegments(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
