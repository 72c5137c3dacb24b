package validator

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/nguyentantai21042004/gloss-flow/internal/gloss"
)

const validReply = "VALID"

const checkGlossPrompt = `Validate this ASL gloss.
Transcript: '%s'
Gloss: '%s'
If the gloss is correct, respond with exactly VALID.
If it is incorrect, respond with the corrected ASL gloss.
One line only, uppercase words, no punctuation or symbols.`

const languagePrompt = `Identify the language of the text below.
Respond with its two-letter ISO 639-1 code only.

%s`

const tonePrompt = `Describe the tone of the text below in a single lowercase word
(for example: neutral, happy, angry, sad, formal, sarcastic).
Respond with the word only.

%s`

// CheckGloss asks the model whether gloss is a correct rendering of transcript.
func (v *implValidator) CheckGloss(ctx context.Context, transcript, g string) (*Verdict, error) {
	reply, err := v.completer.complete(ctx, fmt.Sprintf(checkGlossPrompt, transcript, g))
	if err != nil {
		return nil, fmt.Errorf("check gloss: %w", err)
	}

	verdict, err := parseVerdict(reply, g)
	if err != nil {
		return nil, err
	}
	v.logger.Debug(ctx, "Gloss verdict: valid=%t gloss=%q similarity=%.2f", verdict.Valid, verdict.Gloss, verdict.Similarity)
	return verdict, nil
}

func (v *implValidator) DetectLanguage(ctx context.Context, text string) (string, error) {
	reply, err := v.completer.complete(ctx, fmt.Sprintf(languagePrompt, text))
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	return firstWord(reply)
}

func (v *implValidator) DetectTone(ctx context.Context, text string) (string, error) {
	reply, err := v.completer.complete(ctx, fmt.Sprintf(tonePrompt, text))
	if err != nil {
		return "", fmt.Errorf("detect tone: %w", err)
	}
	return firstWord(reply)
}

// parseVerdict interprets a reply to checkGlossPrompt. Only the first line
// counts. A first word of VALID accepts the gloss; anything else is taken
// as a correction and reduced to the gloss alphabet.
func parseVerdict(reply, original string) (*Verdict, error) {
	raw := strings.TrimSpace(reply)
	if raw == "" {
		return nil, ErrEmptyReply
	}

	line, _, _ := strings.Cut(raw, "\n")
	if isValidReply(line) {
		return &Verdict{Valid: true, Gloss: original, Similarity: 1, Raw: raw}, nil
	}

	corrected := gloss.Sanitize(line)
	if corrected == "" {
		return nil, ErrEmptyReply
	}
	if corrected == original {
		return &Verdict{Valid: true, Gloss: original, Similarity: 1, Raw: raw}, nil
	}
	return &Verdict{
		Valid:      false,
		Gloss:      corrected,
		Similarity: matchr.JaroWinkler(original, corrected, false),
		Raw:        raw,
	}, nil
}

// isValidReply reports whether line starts with the word VALID, ignoring
// case and surrounding quotes or punctuation.
func isValidReply(line string) bool {
	word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	return strings.EqualFold(word, validReply)
}

// firstWord returns the first word of a reply, lowercased, letters only.
func firstWord(reply string) (string, error) {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return "", ErrEmptyReply
	}
	word := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, fields[0])
	if word == "" {
		return "", ErrEmptyReply
	}
	return word, nil
}
