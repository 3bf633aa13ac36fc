// SPDX-License-Identifier: EPL-2.0

package comb

import "math"

// Kind selects the comb filter topology.
type Kind int

const (
	// FIR is the feedforward variant: y[n] = x[n] + gain*x[n-delay].
	// The delay line tracks past inputs, so the impulse response is finite.
	FIR Kind = iota
	// IIR is the feedback variant: y[n] = x[n] + gain*y[n-delay].
	// The delay line tracks past outputs, so echoes feed back indefinitely.
	IIR
)

func (k Kind) String() string {
	switch k {
	case FIR:
		return "fir"
	case IIR:
		return "iir"
	}
	return "unknown"
}

// Filter applies a comb filter to channel-major blocks of 16-bit PCM.
//
// Each channel owns an independent delay line whose state persists across
// Process calls, so splitting one stream into blocks of any sizes produces
// output identical to processing it in a single call.
//
// A Filter must not be used from multiple goroutines at once; separate
// Filter instances are fully independent.
type Filter struct {
	kind  Kind
	gain  float64
	delay int
	lines []*DelayLine
}

// New creates a comb filter. The delay length is derived from the target
// frequency as round(sampleRate/freqHz); a combination that rounds below one
// sample is rejected with ErrInvalidDelay, as are non-positive sampleRate or
// freqHz. channels fixes the channel count for the lifetime of the filter.
func New(kind Kind, sampleRate int, freqHz, gain float64, channels int) (*Filter, error) {
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if sampleRate < 1 || freqHz <= 0 {
		return nil, ErrInvalidDelay
	}

	delay := int(math.Round(float64(sampleRate) / freqHz))
	if delay < 1 {
		return nil, ErrInvalidDelay
	}

	f := &Filter{
		kind:  kind,
		gain:  gain,
		delay: delay,
		lines: make([]*DelayLine, channels),
	}
	for ch := range f.lines {
		line, err := NewDelayLine(delay)
		if err != nil {
			return nil, err
		}
		f.lines[ch] = line
	}

	return f, nil
}

// Kind returns the filter topology.
func (f *Filter) Kind() Kind { return f.kind }

// Gain returns the scalar applied to the delayed tap.
func (f *Filter) Gain() float64 { return f.gain }

// Delay returns the delay length in samples. Callers that want to skip the
// startup transient (while the delay lines are still zero-filled) can drop
// the first Delay() output frames.
func (f *Filter) Delay() int { return f.delay }

// Channels returns the fixed channel count.
func (f *Filter) Channels() int { return len(f.lines) }

// Reset clears every channel's delay line, as if the filter had just been
// constructed.
func (f *Filter) Reset() {
	for _, line := range f.lines {
		line.Reset()
	}
}

// Process filters one channel-major block, reading in and writing the
// result to out. out may be the same slices as in; each output channel must
// be at least as long as the block's frame count.
//
// The block's channel count must equal Channels() and every channel must
// carry the same number of frames. Validation happens before any delay line
// is touched, so a rejected call leaves the filter state untouched.
// Zero-frame blocks are a no-op.
func (f *Filter) Process(in, out [][]int16) error {
	if len(in) != len(f.lines) || len(out) != len(f.lines) {
		return ErrChannelCountMismatch
	}

	frames := len(in[0])
	for _, ch := range in {
		if len(ch) != frames {
			return ErrRaggedBlock
		}
	}
	for _, ch := range out {
		if len(ch) < frames {
			return ErrShortBlock
		}
	}

	for ch := range in {
		f.processChannel(f.lines[ch], in[ch], out[ch])
	}

	return nil
}

// ProcessInPlace filters one channel-major block, overwriting it with the
// result.
func (f *Filter) ProcessInPlace(block [][]int16) error {
	return f.Process(block, block)
}

func (f *Filter) processChannel(line *DelayLine, in, out []int16) {
	for n, x := range in {
		delayed := line.Read()

		// Widen before applying the gain; float64 represents every int16
		// exactly and cannot wrap during resonant feedback. Saturate at
		// the final narrowing.
		y := clamp16(float64(x) + f.gain*float64(delayed))

		if f.kind == FIR {
			line.Write(x)
		} else {
			line.Write(y)
		}
		out[n] = y
	}
}

// clamp16 narrows a widened sample to the int16 range, saturating instead
// of wrapping.
func clamp16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
