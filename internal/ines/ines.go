// Package ines decodes the 16 byte iNES cartridge header.
// The iNES 2.0 exponential ROM size encoding is not supported,
// large ROMs using it decode through the legacy size fields.
package ines

import (
	"errors"
	"fmt"
)

// HeaderLength is the fixed size of the iNES header in bytes.
const HeaderLength = 16

const (
	prgUnit     = 16 * 1024
	chrUnit     = 8 * 1024
	trainerSize = 512
)

// header byte offsets and flag masks, see https://www.nesdev.org/wiki/INES
const (
	prgSizeOffset = 4
	chrSizeOffset = 5
	flags6Offset  = 6
	flags7Offset  = 7

	flagMirrorVertical = 1 << 0
	flagExtraRAM       = 1 << 1
	flagTrainer        = 1 << 2
	flagFourScreen     = 1 << 3
)

// ErrMalformedHeader is returned if the header buffer is too short to decode.
var ErrMalformedHeader = errors.New("malformed iNES header")

// Mirroring defines the nametable mirroring of a cartridge.
type Mirroring int

// Nametable mirroring types.
const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorVertical:
		return "Vertical"
	case MirrorFourScreen:
		return "Four Screen"
	default:
		return "Horizontal"
	}
}

// Header describes the cartridge region layout and metadata.
// It is derived once from the header bytes and not modified afterwards.
type Header struct {
	TrainerStart int
	TrainerSize  int
	PrgStart     int
	PrgSize      int
	ChrStart     int
	ChrSize      int

	Mapper    uint8
	Mirroring Mirroring
	ExtraRAM  bool
}

// DecodeHeader decodes the first 16 bytes of an iNES file. Bytes 8-15 are
// ignored, the magic bytes are not validated. A PRG size field of 0 means
// 256 units of 16 KB, the legacy wraparound convention.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderLength {
		return Header{}, fmt.Errorf("%w: got %d bytes, expected %d",
			ErrMalformedHeader, len(data), HeaderLength)
	}

	prgUnits := int(data[prgSizeOffset])
	if prgUnits == 0 {
		prgUnits = 256
	}

	flags6 := data[flags6Offset]
	flags7 := data[flags7Offset]

	var trainer int
	if flags6&flagTrainer != 0 {
		trainer = trainerSize
	}

	mirroring := MirrorHorizontal
	switch {
	case flags6&flagFourScreen != 0:
		mirroring = MirrorFourScreen
	case flags6&flagMirrorVertical != 0:
		mirroring = MirrorVertical
	}

	return Header{
		TrainerStart: HeaderLength,
		TrainerSize:  trainer,
		PrgStart:     HeaderLength + trainer,
		PrgSize:      prgUnits * prgUnit,
		// historic formula that does not account for the PRG region size,
		// kept unchanged as long as nothing reads CHR data
		ChrStart: HeaderLength + 2*trainer,
		ChrSize:  int(data[chrSizeOffset]) * chrUnit,

		Mapper:    flags7&0xf0 | flags6>>4,
		Mirroring: mirroring,
		ExtraRAM:  flags6&flagExtraRAM != 0,
	}, nil
}
