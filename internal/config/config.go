package config

import (
	"fmt"
	"slices"
	"time"
)

// Transcriber backend names.
const (
	BackendWhisperCLI = "whisper_cli"
	BackendOpenAI     = "openai"
)

// Validator provider names.
const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Validator   ValidatorConfig   `yaml:"validator"`
	Signs       SignsConfig       `yaml:"signs"`
	Report      ReportConfig      `yaml:"report"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	UseGPU     bool   `yaml:"use_gpu"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type TranscriberConfig struct {
	Primary  string             `yaml:"primary"`
	Fallback string             `yaml:"fallback"`
	OpenAI   OpenAISpeechConfig `yaml:"openai"`
}

// OpenAISpeechConfig targets any OpenAI-compatible /audio/transcriptions
// endpoint, including self-hosted faster-whisper servers.
type OpenAISpeechConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`

	APIKey string `yaml:"-"`
}

type ValidatorConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model"`
	BaseURL        string        `yaml:"base_url"`
	APIKeyEnv      string        `yaml:"api_key_env"`
	Timeout        time.Duration `yaml:"timeout"`
	DetectLanguage bool          `yaml:"detect_language"`
	DetectTone     bool          `yaml:"detect_tone"`

	// APIKeys is filled from APIKeyEnv; a comma separated value gives
	// several keys that the gemini provider rotates through.
	APIKeys []string `yaml:"-"`
}

type SignsConfig struct {
	MappingPath string `yaml:"mapping_path"`
	SpaceKey    string `yaml:"space_key"`
}

type ReportConfig struct {
	Docx bool `yaml:"docx"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Validate checks required fields and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Transcriber.Primary == "" {
		c.Transcriber.Primary = BackendWhisperCLI
	}
	backends := []string{BackendWhisperCLI, BackendOpenAI}
	if !slices.Contains(backends, c.Transcriber.Primary) {
		return fmt.Errorf("transcriber.primary %q is invalid; valid values: %v", c.Transcriber.Primary, backends)
	}
	if c.Transcriber.Fallback != "" {
		if !slices.Contains(backends, c.Transcriber.Fallback) {
			return fmt.Errorf("transcriber.fallback %q is invalid; valid values: %v", c.Transcriber.Fallback, backends)
		}
		if c.Transcriber.Fallback == c.Transcriber.Primary {
			return fmt.Errorf("transcriber.fallback must differ from transcriber.primary")
		}
	}

	if c.usesBackend(BackendWhisperCLI) {
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	}

	if c.Validator.Enabled {
		if c.Validator.Provider == "" {
			c.Validator.Provider = ProviderOpenRouter
		}
		providers := []string{ProviderOpenRouter, ProviderOpenAI, ProviderGemini}
		if !slices.Contains(providers, c.Validator.Provider) {
			return fmt.Errorf("validator.provider %q is invalid; valid values: %v", c.Validator.Provider, providers)
		}
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}
	if c.Transcriber.OpenAI.Model == "" {
		c.Transcriber.OpenAI.Model = "whisper-1"
	}
	if c.Transcriber.OpenAI.APIKeyEnv == "" {
		c.Transcriber.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.Transcriber.OpenAI.Timeout == 0 {
		c.Transcriber.OpenAI.Timeout = 120 * time.Second
	}
	c.Validator.applyDefaults()
	if c.Signs.SpaceKey == "" {
		c.Signs.SpaceKey = "Nothing"
	}

	return nil
}

func (v *ValidatorConfig) applyDefaults() {
	if v.Provider == "" {
		v.Provider = ProviderOpenRouter
	}
	if v.APIKeyEnv == "" {
		v.APIKeyEnv = "API_KEY"
	}
	if v.Timeout == 0 {
		v.Timeout = 60 * time.Second
	}
	switch v.Provider {
	case ProviderOpenRouter:
		if v.BaseURL == "" {
			v.BaseURL = "https://openrouter.ai/api/v1"
		}
		if v.Model == "" {
			v.Model = "openai/gpt-5"
		}
	case ProviderOpenAI:
		if v.Model == "" {
			v.Model = "gpt-4o-mini"
		}
	case ProviderGemini:
		if v.Model == "" {
			v.Model = "gemini-2.5-flash"
		}
	}
}

func (c *Config) usesBackend(name string) bool {
	return c.Transcriber.Primary == name || c.Transcriber.Fallback == name
}
