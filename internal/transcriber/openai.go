package transcriber

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type openAI struct {
	client   oai.Client
	model    string
	language string
	logger   logger.Logger
}

// NewOpenAI creates a Transcriber for an OpenAI-compatible
// /audio/transcriptions endpoint. extra request options are appended last.
func NewOpenAI(cfg config.OpenAISpeechConfig, language string, log logger.Logger, extra ...option.RequestOption) (Transcriber, error) {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("openai transcriber: %s is not set", cfg.APIKeyEnv)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai transcriber: model must not be empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	opts = append(opts, extra...)

	return &openAI{
		client:   oai.NewClient(opts...),
		model:    cfg.Model,
		language: language,
		logger:   log,
	}, nil
}

func (o *openAI) Name() string {
	return config.BackendOpenAI
}

func (o *openAI) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	o.logger.Info(ctx, "Uploading audio for transcription (model %s): %s", o.model, audioPath)

	params := oai.AudioTranscriptionNewParams{
		File:  f,
		Model: oai.AudioModel(o.model),
	}
	if o.language != "" {
		params.Language = oai.String(o.language)
	}

	resp, err := o.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	return &Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: o.language,
		Backend:  o.Name(),
	}, nil
}
