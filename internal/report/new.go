package report

import (
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
)

type implWriter struct {
	outputDir string
	docx      bool
	logger    logger.Logger
}

// New creates a Writer that always writes JSON and also DOCX when docx is set.
func New(outputDir string, docx bool, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		docx:      docx,
		logger:    log,
	}
}
