package processor

import (
	"github.com/nguyentantai21042004/gloss-flow/internal/config"
	"github.com/nguyentantai21042004/gloss-flow/internal/gloss"
	"github.com/nguyentantai21042004/gloss-flow/internal/logger"
	"github.com/nguyentantai21042004/gloss-flow/internal/media"
	"github.com/nguyentantai21042004/gloss-flow/internal/observe"
	"github.com/nguyentantai21042004/gloss-flow/internal/report"
	"github.com/nguyentantai21042004/gloss-flow/internal/signmap"
	"github.com/nguyentantai21042004/gloss-flow/internal/transcriber"
	"github.com/nguyentantai21042004/gloss-flow/internal/validator"
)

// Deps are the collaborators of a Processor. Validator, Signs and Report
// are optional; Demuxer and Transcriber are only needed for media inputs.
type Deps struct {
	Demuxer     media.Demuxer
	Transcriber transcriber.Transcriber
	Gloss       gloss.Transformer
	Validator   validator.Validator
	Signs       signmap.Mapper
	Report      report.Writer
	Metrics     *observe.Metrics
	Logger      logger.Logger
}

type implProcessor struct {
	cfg         *config.Config
	demuxer     media.Demuxer
	transcriber transcriber.Transcriber
	gloss       gloss.Transformer
	validator   validator.Validator
	signs       signmap.Mapper
	report      report.Writer
	metrics     *observe.Metrics
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps) Processor {
	p := &implProcessor{
		cfg:         cfg,
		demuxer:     deps.Demuxer,
		transcriber: deps.Transcriber,
		gloss:       deps.Gloss,
		validator:   deps.Validator,
		signs:       deps.Signs,
		report:      deps.Report,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
	}
	if p.gloss == nil {
		p.gloss = gloss.New()
	}
	if p.metrics == nil {
		p.metrics = observe.Nop()
	}
	if p.logger == nil {
		p.logger = logger.Nop()
	}
	return p
}
