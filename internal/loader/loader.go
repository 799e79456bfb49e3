// Package loader handles input file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nescdl2info/internal/ines"
	"github.com/retroenv/nescdl2info/internal/options"
)

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new input file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the header bytes of the iNES file and all bytes of the
// Code/Data Log file. A file shorter than the header length is returned
// truncated, the header decoder reports it as malformed.
func (l *Loader) Load(opts options.Program) ([]byte, []byte, error) {
	header, err := readHeader(opts.InesFile)
	if err != nil {
		return nil, nil, err
	}

	cdlData, err := os.ReadFile(opts.CdlFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading CDL file %s: %w", opts.CdlFile, err)
	}

	return header, cdlData, nil
}

// readHeader reads up to the first header length bytes of the iNES file,
// the rest of the ROM is not needed.
func readHeader(name string) ([]byte, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	buf := make([]byte, ines.HeaderLength)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header of %s: %w", name, err)
	}
	return buf[:n], nil
}
