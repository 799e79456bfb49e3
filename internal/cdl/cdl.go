// Package cdl segments a Code/Data Log trace of the PRG ROM into blocks.
package cdl

import (
	"errors"

	"github.com/retroenv/retrogolib/arch/system/nes/codedatalog"
)

// ErrEmptyInput is returned if there are no log bytes to segment.
var ErrEmptyInput = errors.New("empty code/data log input")

// ByteType classifies how a PRG ROM byte was accessed during emulation.
type ByteType int

// Byte classification types.
const (
	Unaccessed ByteType = iota
	Code
	Data
)

func (b ByteType) String() string {
	switch b {
	case Code:
		return "Code"
	case Data:
		return "Data"
	default:
		return "Unaccessed"
	}
}

// Block is a maximal run of consecutive PRG bytes that share the same
// code/data log bits. Offsets are inclusive and relative to the start of
// the PRG ROM, not mapped to the CPU address space.
type Block struct {
	StartOffset int
	EndOffset   int
	Type        ByteType
}

// classMask selects the log bits relevant for classification, the PCM audio,
// indirect access and CPU bank bits of the log byte are ignored.
const classMask = codedatalog.Code | codedatalog.Data

// Segment walks the log bytes once and groups consecutive bytes with equal
// code/data bits into blocks. A new block starts whenever the masked bits
// change, so the output is uniquely determined by the input. The returned
// blocks cover every input offset exactly once, in ascending order.
func Segment(prgFlags []byte) ([]Block, error) {
	if len(prgFlags) == 0 {
		return nil, ErrEmptyInput
	}

	var blocks []Block
	key := codedatalog.PrgFlag(prgFlags[0]) & classMask
	start := 0

	for i := 1; i < len(prgFlags); i++ {
		flags := codedatalog.PrgFlag(prgFlags[i]) & classMask
		if flags == key {
			continue
		}

		blocks = append(blocks, Block{
			StartOffset: start,
			EndOffset:   i - 1,
			Type:        classify(key),
		})
		key = flags
		start = i
	}

	blocks = append(blocks, Block{
		StartOffset: start,
		EndOffset:   len(prgFlags) - 1,
		Type:        classify(key),
	})
	return blocks, nil
}

// classify maps masked log bits to a byte type, the code bit wins over the
// data bit if both are set.
func classify(flags codedatalog.PrgFlag) ByteType {
	switch {
	case flags&codedatalog.Code != 0:
		return Code
	case flags&codedatalog.Data != 0:
		return Data
	default:
		return Unaccessed
	}
}
