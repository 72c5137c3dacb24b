// Package validator asks a remote language model whether a gloss matches
// its transcript. The check is advisory: callers keep the rule-based gloss
// when the model is unreachable.
package validator

import (
	"context"
	"errors"
)

var (
	// ErrEmptyReply is returned when the model answers with nothing usable.
	ErrEmptyReply = errors.New("validator: empty reply")
	// ErrKeysExhausted is returned when every configured key was rate limited.
	ErrKeysExhausted = errors.New("validator: all API keys exhausted")
)

// Verdict is the model's opinion of a gloss.
type Verdict struct {
	Valid bool   `json:"valid"`
	Gloss string `json:"gloss"`
	// Similarity is the Jaro-Winkler score of Gloss against the checked
	// gloss, 1 when they are equal.
	Similarity float64 `json:"similarity"`
	Raw        string  `json:"raw,omitempty"`
}

// Validator checks glosses and classifies transcripts.
type Validator interface {
	CheckGloss(ctx context.Context, transcript, gloss string) (*Verdict, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
	DetectTone(ctx context.Context, text string) (string, error)
}

// completer sends a single prompt and returns the model's text reply.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}
