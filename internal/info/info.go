// Package info writes classified PRG blocks in the info file syntax of
// disassembler and labeling tools.
package info

import (
	"fmt"
	"io"

	"github.com/retroenv/nescdl2info/internal/cdl"
)

// codeBaseAddress is the CPU address that PRG offset 0 is mapped to,
// assuming a single 16 KB bank fixed at $c000. Multi bank address
// translation is not supported.
const codeBaseAddress = 0xc000

// Writer writes annotation lines for classified blocks.
type Writer struct {
	writer io.Writer
}

// New creates a new annotation writer.
func New(writer io.Writer) *Writer {
	return &Writer{writer: writer}
}

// Write writes the annotation lines for all blocks, preserving block order.
func (w *Writer) Write(blocks []cdl.Block) error {
	for _, block := range blocks {
		for _, line := range BlockLines(block) {
			if _, err := fmt.Fprintln(w.writer, line); err != nil {
				return fmt.Errorf("writing annotation line: %w", err)
			}
		}
	}
	return nil
}

// BlockLines returns the annotation lines for a single block. Data and
// unaccessed blocks get a label line before the range line, code blocks
// only the range line.
func BlockLines(block cdl.Block) []string {
	start := codeBaseAddress + block.StartOffset
	end := codeBaseAddress + block.EndOffset

	lines := make([]string, 0, 2)
	if block.Type == cdl.Data || block.Type == cdl.Unaccessed {
		lines = append(lines, fmt.Sprintf(
			"LABEL { ADDR $%04x; NAME \"$%04x\"; COMMENT \"%s\"; };",
			start, start, block.Type))
	}

	rangeType := "BYTETABLE"
	if block.Type == cdl.Code {
		rangeType = "CODE"
	}
	lines = append(lines, fmt.Sprintf(
		"RANGE { START $%04x; END $%04x; TYPE %s; };",
		start, end, rangeType))
	return lines
}
