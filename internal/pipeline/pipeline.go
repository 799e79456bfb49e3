// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"fmt"
	"io"

	"github.com/retroenv/nescdl2info/internal/cdl"
	"github.com/retroenv/nescdl2info/internal/info"
	"github.com/retroenv/nescdl2info/internal/ines"
	"github.com/retroenv/nescdl2info/internal/loader"
	"github.com/retroenv/nescdl2info/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute reads the input files and writes the annotation lines to writer.
func (p *Pipeline) Execute(opts options.Program, writer io.Writer) error {
	headerBytes, cdlBytes, err := p.loader.Load(opts)
	if err != nil {
		return fmt.Errorf("loading input files: %w", err)
	}

	return p.ExecuteWithData(opts, headerBytes, cdlBytes, writer)
}

// ExecuteWithData runs the conversion with already read input bytes.
// This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithData(opts options.Program, headerBytes, cdlBytes []byte,
	writer io.Writer) error {

	header, err := ines.DecodeHeader(headerBytes)
	if err != nil {
		return fmt.Errorf("decoding iNES header: %w", err)
	}

	p.printInfo(opts, header)

	// the log has to cover the PRG region, trailing CHR log bytes are discarded
	if len(cdlBytes) < header.PrgSize {
		return fmt.Errorf("%w: log has %d bytes but PRG region has %d",
			cdl.ErrEmptyInput, len(cdlBytes), header.PrgSize)
	}

	blocks, err := cdl.Segment(cdlBytes[:header.PrgSize])
	if err != nil {
		return fmt.Errorf("segmenting code/data log: %w", err)
	}

	if err := info.New(writer).Write(blocks); err != nil {
		return fmt.Errorf("writing annotations: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM whose log is being processed.
func (p *Pipeline) printInfo(opts options.Program, header ines.Header) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing Code/Data log",
		log.String("rom", opts.InesFile),
		log.String("cdl", opts.CdlFile),
		log.Int("prgSize", header.PrgSize),
		log.Uint8("mapper", header.Mapper),
		log.String("mirroring", header.Mirroring.String()),
	)
}
