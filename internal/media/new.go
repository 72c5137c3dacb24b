package media

import (
	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/pkg/executor"
)

type implDemuxer struct {
	binary     string
	sampleRate int
	tempDir    string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Demuxer backed by ffmpeg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Demuxer {
	return &implDemuxer{
		binary:     cfg.FFmpeg.BinaryPath,
		sampleRate: cfg.FFmpeg.SampleRate,
		tempDir:    cfg.Paths.Temp,
		executor:   exec,
		logger:     log,
	}
}
