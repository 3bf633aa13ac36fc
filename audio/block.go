// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcomb/utils"
)

// BlockReader adapts an interleaved float32 Source into channel-major
// blocks of 16-bit PCM, the shape consumed by block filters. Each call to
// ReadBlock yields up to blockFrames frames per channel.
type BlockReader struct {
	src      Source
	channels int
	capacity int

	floatBuf []float32
	block    [][]int16
	view     [][]int16
}

// NewBlockReader creates a BlockReader producing blocks of at most
// blockFrames frames. blockFrames must be positive.
func NewBlockReader(src Source, blockFrames int) (*BlockReader, error) {
	if blockFrames < 1 {
		return nil, ErrInvalidBlockFrames
	}

	channels := src.Channels()
	b := &BlockReader{
		src:      src,
		channels: channels,
		capacity: blockFrames,
		floatBuf: make([]float32, blockFrames*channels),
		block:    make([][]int16, channels),
		view:     make([][]int16, channels),
	}
	for ch := range b.block {
		b.block[ch] = make([]int16, blockFrames)
	}

	return b, nil
}

// Channels returns the channel count of the underlying source.
func (b *BlockReader) Channels() int { return b.channels }

// SampleRate returns the sample rate of the underlying source.
func (b *BlockReader) SampleRate() int { return b.src.SampleRate() }

// ReadBlock reads the next block from the source, deinterleaves it and
// converts to int16. It returns a channel-major block and the frame count.
// The returned slices are reused by the next call; callers that need the
// data after that must copy it. A trailing partial frame from the source is
// dropped. When the source is exhausted, ReadBlock returns io.EOF; the
// final data block may arrive together with io.EOF.
func (b *BlockReader) ReadBlock() ([][]int16, int, error) {
	n, err := b.src.ReadSamples(b.floatBuf)
	if err != nil && err != io.EOF {
		return nil, 0, fmt.Errorf("%w", err)
	}

	frames := n / b.channels
	for f := 0; f < frames; f++ {
		base := f * b.channels
		for ch := 0; ch < b.channels; ch++ {
			b.block[ch][f] = utils.Float32ToInt16(b.floatBuf[base+ch])
		}
	}

	for ch := range b.view {
		b.view[ch] = b.block[ch][:frames]
	}

	return b.view, frames, err
}

// Deinterleave16 splits interleaved samples into a channel-major block.
// The sample count must be a multiple of channels.
func Deinterleave16(src []int16, channels int) ([][]int16, error) {
	if channels < 1 || len(src)%channels != 0 {
		return nil, ErrInvalidSampleCount
	}

	frames := len(src) / channels
	block := make([][]int16, channels)
	for ch := range block {
		block[ch] = make([]int16, frames)
		for f := 0; f < frames; f++ {
			block[ch][f] = src[f*channels+ch]
		}
	}

	return block, nil
}

// Interleave16 flattens a channel-major block into interleaved samples.
// All channels must carry the same frame count.
func Interleave16(block [][]int16) ([]int16, error) {
	if len(block) == 0 {
		return nil, nil
	}

	frames := len(block[0])
	for _, ch := range block {
		if len(ch) != frames {
			return nil, ErrInvalidSampleCount
		}
	}

	out := make([]int16, frames*len(block))
	for ch := range block {
		for f, s := range block[ch] {
			out[f*len(block)+ch] = s
		}
	}

	return out, nil
}
