// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcomb/utils"
)

// Resampler streams from src at a new sample rate using Catmull-Rom cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. A one-pole low-pass is applied ahead of the interpolation when
// downsampling to tame aliasing.
type Resampler struct {
	src      Source
	channels int
	dstRate  int

	// Source frames advanced per output frame.
	step float64
	// Fractional position between win[1] and win[2].
	pos float64

	// Sliding window of four source frames: t-1, t0, t+1, t+2.
	// Interpolation happens between win[1] and win[2].
	win [4][]float32

	primed bool
	eof    bool
	done   bool
	// Number of synthetic frames appended past the end of the source.
	pad int

	frameBuf []float32

	lowpass bool
	lpAlpha float32
	lpState []float32
}

// NewResampler wraps src so that ReadSamples yields samples at dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     step,
		frameBuf: make([]float32, channels),
		lowpass:  step > 1,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame fills dst with one source frame, applying the anti-alias
// low-pass when active. Returns false once the source is exhausted; a
// trailing partial frame is dropped.
func (r *Resampler) readFrame(dst []float32) bool {
	if r.eof {
		return false
	}

	filled := 0
	for filled < r.channels {
		n, err := r.src.ReadSamples(r.frameBuf[filled:r.channels])
		filled += n
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			r.eof = true
			break
		}
	}
	if filled < r.channels {
		return false
	}

	if r.lowpass {
		for c := 0; c < r.channels; c++ {
			r.lpState[c] = r.lpAlpha*r.frameBuf[c] + (1-r.lpAlpha)*r.lpState[c]
			r.frameBuf[c] = r.lpState[c]
		}
	}
	copy(dst, r.frameBuf)

	return true
}

// prime fills the interpolation window with the first source frames. The
// leading edge duplicates the first frame; a short source pads the trailing
// edge the same way advance does at EOF.
func (r *Resampler) prime() error {
	if !r.readFrame(r.win[1]) {
		return io.EOF
	}
	copy(r.win[0], r.win[1])
	if r.lowpass {
		copy(r.lpState, r.win[1])
	}

	for _, slot := range []int{2, 3} {
		if !r.readFrame(r.win[slot]) {
			copy(r.win[slot], r.win[slot-1])
			r.pad++
		}
	}

	r.primed = true
	return nil
}

// advance slides the window one source frame forward. Returns false when
// the window has moved past the final real frame.
func (r *Resampler) advance() bool {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	if r.readFrame(r.win[3]) {
		return true
	}

	copy(r.win[3], r.win[2])
	r.pad++
	return r.pad < 2
}

// ReadSamples produces interleaved samples at the destination rate. The dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			r.done = true
			return 0, err
		}
		if r.pad >= 2 {
			// Single-frame source: emit that frame once.
			copy(dst[:r.channels], r.win[1])
			r.done = true
			return r.channels, io.EOF
		}
	}

	framesWanted := len(dst) / r.channels
	written := 0

	for written < framesWanted {
		for r.pos >= 1 {
			if !r.advance() {
				r.done = true
				return written * r.channels, io.EOF
			}
			r.pos--
		}

		t := float32(r.pos)
		base := written * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], t)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
