package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, validates it and resolves API keys from
// the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ResolveSecrets(os.Getenv)
	return cfg, nil
}

// LoadEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are fine.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

// ResolveSecrets fills API keys from the environment using the configured
// variable names.
func (c *Config) ResolveSecrets(getenv func(string) string) {
	if c.Transcriber.OpenAI.APIKey == "" {
		c.Transcriber.OpenAI.APIKey = strings.TrimSpace(getenv(c.Transcriber.OpenAI.APIKeyEnv))
	}
	if len(c.Validator.APIKeys) == 0 {
		c.Validator.APIKeys = splitKeys(getenv(c.Validator.APIKeyEnv))
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
