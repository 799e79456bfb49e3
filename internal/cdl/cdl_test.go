package cdl

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSegmentEmpty(t *testing.T) {
	_, err := Segment(nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestSegmentSingleRun(t *testing.T) {
	blocks, err := Segment(make([]byte, 0x100))
	assert.NoError(t, err)

	assert.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].StartOffset)
	assert.Equal(t, 0xff, blocks[0].EndOffset)
	assert.Equal(t, Unaccessed, blocks[0].Type)
}

func TestSegmentMixed(t *testing.T) {
	blocks, err := Segment([]byte{0x01, 0x01, 0x02, 0x02, 0x00, 0x01})
	assert.NoError(t, err)

	assert.Equal(t, []Block{
		{StartOffset: 0, EndOffset: 1, Type: Code},
		{StartOffset: 2, EndOffset: 3, Type: Data},
		{StartOffset: 4, EndOffset: 4, Type: Unaccessed},
		{StartOffset: 5, EndOffset: 5, Type: Code},
	}, blocks)
}

// a byte with both code and data bits set is code, but it does not join a
// run of bytes with only the code bit set
func TestSegmentCodeAndDataBits(t *testing.T) {
	blocks, err := Segment([]byte{0x01, 0x03})
	assert.NoError(t, err)

	assert.Equal(t, []Block{
		{StartOffset: 0, EndOffset: 0, Type: Code},
		{StartOffset: 1, EndOffset: 1, Type: Code},
	}, blocks)
}

func TestSegmentIgnoresUpperBits(t *testing.T) {
	// PCM audio, indirect access and CPU bank bits do not split runs
	blocks, err := Segment([]byte{0x41, 0x11, 0x01})
	assert.NoError(t, err)

	assert.Len(t, blocks, 1)
	assert.Equal(t, Code, blocks[0].Type)

	blocks, err = Segment([]byte{0x40})
	assert.NoError(t, err)
	assert.Equal(t, Unaccessed, blocks[0].Type)
}

func TestSegmentCoverage(t *testing.T) {
	input := []byte{0x00, 0x01, 0x01, 0x02, 0x03, 0x00, 0x00, 0x02, 0x01, 0x00}

	blocks, err := Segment(input)
	assert.NoError(t, err)

	assert.Equal(t, 0, blocks[0].StartOffset)
	for i, block := range blocks {
		assert.True(t, block.StartOffset <= block.EndOffset)
		if i > 0 {
			assert.Equal(t, blocks[i-1].EndOffset+1, block.StartOffset)
		}
	}
	assert.Equal(t, len(input)-1, blocks[len(blocks)-1].EndOffset)
}

func TestSegmentDeterminism(t *testing.T) {
	input := []byte{0x00, 0x01, 0x01, 0x02, 0x03, 0x00, 0x00, 0x02, 0x01, 0x00}

	first, err := Segment(input)
	assert.NoError(t, err)
	second, err := Segment(input)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestByteTypeString(t *testing.T) {
	assert.Equal(t, "Code", Code.String())
	assert.Equal(t, "Data", Data.String())
	assert.Equal(t, "Unaccessed", Unaccessed.String())
}
