// Package gloss converts English transcripts into a simplified ASL gloss:
// uppercase, space separated tokens with articles and be-verbs dropped,
// subject contractions collapsed and a closed set of verbs reduced to their
// base form.
//
// The transform is a fixed sequence of pure stages. Elision runs before
// lemmatization, so a be-form is dropped before any verb lookup happens.
package gloss

// DefaultStages returns the stages in the order Transform applies them.
// A fresh slice is returned on every call.
func DefaultStages() []Stage {
	return []Stage{
		FoldCase,
		StripPunctuation,
		ElideFunctionWords,
		CollapseContractions,
		Lemmatize,
		NormalizeWhitespace,
	}
}

var defaultTransformer = New()

// Transform converts transcript to gloss using the default pipeline.
// It never fails; empty or blank input yields "".
func Transform(transcript string) string {
	return defaultTransformer.Transform(transcript)
}

func (t *implTransformer) Transform(transcript string) string {
	text := transcript
	for _, stage := range t.stages {
		text = stage(text)
	}
	return text
}

// Sanitize brings free-form text, such as a gloss suggested by a remote
// model, into the gloss alphabet without applying any grammar rule.
func Sanitize(text string) string {
	text = StripPunctuation(FoldCase(text))
	text = apostropheRemover.Replace(text)
	return NormalizeWhitespace(text)
}
