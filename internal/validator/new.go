package validator

import (
	"fmt"

	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type implValidator struct {
	completer completer
	logger    logger.Logger
}

// New creates a Validator for the configured provider. It returns a nil
// Validator when validation is disabled.
func New(cfg config.ValidatorConfig, log logger.Logger, extra ...option.RequestOption) (Validator, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("validator: %s is not set", cfg.APIKeyEnv)
	}

	var c completer
	switch cfg.Provider {
	case config.ProviderOpenRouter, config.ProviderOpenAI:
		c = newChatCompleter(cfg, extra...)
	case config.ProviderGemini:
		c = newGeminiCompleter(cfg, log)
	default:
		return nil, fmt.Errorf("validator: unknown provider %q", cfg.Provider)
	}

	return &implValidator{completer: c, logger: log}, nil
}
