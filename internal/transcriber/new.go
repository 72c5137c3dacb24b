package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/pkg/executor"
)

// New builds the configured primary backend, wrapped with the fallback
// backend when one is set.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	primary, err := build(cfg.Transcriber.Primary, cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	if cfg.Transcriber.Fallback == "" {
		return primary, nil
	}

	fallback, err := build(cfg.Transcriber.Fallback, cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return NewFallback(primary, fallback, log), nil
}

func build(name string, cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch name {
	case config.BackendWhisperCLI:
		return NewWhisperCLI(cfg.Whisper, cfg.Paths.Temp, exec, log), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.Transcriber.OpenAI, cfg.Whisper.Language, log)
	case "":
		return nil, ErrNoBackend
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", name)
	}
}
