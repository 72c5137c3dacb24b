package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
					Language:   "en",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					Language:   "en",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "openai transcriber needs no whisper binary",
			config: Config{
				Transcriber: TranscriberConfig{Primary: BackendOpenAI},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "whisper fallback still needs whisper settings",
			config: Config{
				Transcriber: TranscriberConfig{Primary: BackendOpenAI, Fallback: BackendWhisperCLI},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown transcriber",
			config: Config{
				Transcriber: TranscriberConfig{Primary: "deepgram"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "fallback equal to primary",
			config: Config{
				Transcriber: TranscriberConfig{Primary: BackendOpenAI, Fallback: BackendOpenAI},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown validator provider",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Validator: ValidatorConfig{Enabled: true, Provider: "claude-direct"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "m.bin", BinaryPath: "whisper-cli"},
		Paths:   PathsConfig{Input: "in", Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"whisper.language", cfg.Whisper.Language, "en"},
		{"whisper.threads", cfg.Whisper.Threads, 4},
		{"ffmpeg.binary_path", cfg.FFmpeg.BinaryPath, "ffmpeg"},
		{"ffmpeg.sample_rate", cfg.FFmpeg.SampleRate, 16000},
		{"paths.archived", cfg.Paths.Archived, "data/archived"},
		{"paths.temp", cfg.Paths.Temp, "data/temp"},
		{"performance.max_concurrent", cfg.Performance.MaxConcurrent, 2},
		{"performance.settle_delay", cfg.Performance.SettleDelay, 500 * time.Millisecond},
		{"transcriber.primary", cfg.Transcriber.Primary, BackendWhisperCLI},
		{"transcriber.openai.model", cfg.Transcriber.OpenAI.Model, "whisper-1"},
		{"validator.provider", cfg.Validator.Provider, ProviderOpenRouter},
		{"validator.base_url", cfg.Validator.BaseURL, "https://openrouter.ai/api/v1"},
		{"validator.model", cfg.Validator.Model, "openai/gpt-5"},
		{"validator.api_key_env", cfg.Validator.APIKeyEnv, "API_KEY"},
		{"signs.space_key", cfg.Signs.SpaceKey, "Nothing"},
		{"logging.format", cfg.Logging.Format, "text"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestValidateGeminiDefaults(t *testing.T) {
	cfg := Config{
		Transcriber: TranscriberConfig{Primary: BackendOpenAI},
		Validator:   ValidatorConfig{Enabled: true, Provider: ProviderGemini},
		Paths:       PathsConfig{Input: "in", Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Validator.Model != "gemini-2.5-flash" {
		t.Errorf("validator.model = %q, want gemini-2.5-flash", cfg.Validator.Model)
	}
	if cfg.Validator.BaseURL != "" {
		t.Errorf("validator.base_url = %q, want empty for gemini", cfg.Validator.BaseURL)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("GLOSS_TEST_KEY", "k1, k2 ,")

	path := writeConfig(t, `
whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"
  prompt: "test"

paths:
  input: "data/input"
  output: "data/output"

performance:
  max_concurrent: 3
  settle_delay: 250ms

validator:
  enabled: true
  provider: gemini
  api_key_env: GLOSS_TEST_KEY
  detect_tone: true

logging:
  level: "info"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Performance.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 250ms", cfg.Performance.SettleDelay)
	}
	if !cfg.Validator.DetectTone {
		t.Error("DetectTone should be true")
	}
	if len(cfg.Validator.APIKeys) != 2 || cfg.Validator.APIKeys[0] != "k1" || cfg.Validator.APIKeys[1] != "k2" {
		t.Errorf("APIKeys = %v, want [k1 k2]", cfg.Validator.APIKeys)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
paths:
  input: in
  output: out
  inbox: nope
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unknown keys")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("GLOSS_FLOW_ENV_TEST=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLOSS_FLOW_ENV_TEST", "")
	os.Unsetenv("GLOSS_FLOW_ENV_TEST")

	if err := LoadEnv(envPath, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("GLOSS_FLOW_ENV_TEST"); got != "from-file" {
		t.Errorf("GLOSS_FLOW_ENV_TEST = %q, want from-file", got)
	}
}

func TestResolveSecretsKeepsExplicitKeys(t *testing.T) {
	cfg := Config{
		Validator: ValidatorConfig{APIKeyEnv: "X", APIKeys: []string{"explicit"}},
	}
	cfg.ResolveSecrets(func(string) string { return "from-env" })

	if len(cfg.Validator.APIKeys) != 1 || cfg.Validator.APIKeys[0] != "explicit" {
		t.Errorf("APIKeys = %v, want [explicit]", cfg.Validator.APIKeys)
	}
}
