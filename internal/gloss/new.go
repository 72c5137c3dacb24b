package gloss

type implTransformer struct {
	stages []Stage
}

// New creates a Transformer running the default stage order.
func New() Transformer {
	return &implTransformer{stages: DefaultStages()}
}

// NewWithStages creates a Transformer running the given stages in order.
// Used by tests that exercise a partial pipeline.
func NewWithStages(stages ...Stage) Transformer {
	return &implTransformer{stages: stages}
}
