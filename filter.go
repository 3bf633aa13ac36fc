// SPDX-License-Identifier: EPL-2.0

package audcomb

import (
	"fmt"
	"io"

	"github.com/ik5/audcomb/audio"
	"github.com/ik5/audcomb/comb"
)

// FilterSource16 applies a comb filter to an entire audio source and
// collects the result as interleaved 16-bit PCM.
//
// The filter is constructed from the source's sample rate and channel
// count; kind selects the topology, freqHz the target frequency the delay
// is derived from, and gain the delayed-tap gain. The stream is processed
// in blocks of blockFrames frames.
//
// Returns the interleaved samples and the sample rate of the output (the
// source's rate, unchanged). Construction errors from the comb package
// pass through, so callers can match comb.ErrInvalidDelay and friends.
func FilterSource16(src audio.Source, kind comb.Kind, freqHz, gain float64, blockFrames int) ([]int16, int, error) {
	rate := src.SampleRate()
	channels := src.Channels()

	filter, err := comb.New(kind, rate, freqHz, gain, channels)
	if err != nil {
		return nil, rate, err
	}

	blocks, err := audio.NewBlockReader(src, blockFrames)
	if err != nil {
		return nil, rate, err
	}

	var pcm16 []int16

	for {
		block, frames, err := blocks.ReadBlock()
		if frames > 0 {
			if perr := filter.ProcessInPlace(block); perr != nil {
				return nil, rate, perr
			}

			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, frames*channels)...)
			for ch := range block {
				for f, s := range block[ch] {
					pcm16[start+f*channels+ch] = s
				}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, rate, nil
}
