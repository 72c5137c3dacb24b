package gloss

// Transformer rewrites an English transcript into ASL gloss notation.
// Implementations are pure and safe for concurrent use.
type Transformer interface {
	Transform(transcript string) string
}

// Stage is a single string-to-string rewrite step of the gloss pipeline.
type Stage func(string) string
