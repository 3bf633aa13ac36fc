// SPDX-License-Identifier: EPL-2.0

package comb

// DelayLine is a fixed-capacity circular buffer holding the most recent
// samples written to a single audio channel. Read returns the sample that
// is exactly Len() write steps old, which makes the pair Read-then-Write
// the delayed tap of a comb filter.
//
// A DelayLine starts zero-filled, so the first Len() reads return silence.
type DelayLine struct {
	buf []int16
	pos int
}

// NewDelayLine creates a zero-filled delay line of length samples.
// A length below one is rejected with ErrInvalidDelay: a zero-length line
// would alias the delayed tap with the sample about to be written.
func NewDelayLine(length int) (*DelayLine, error) {
	if length < 1 {
		return nil, ErrInvalidDelay
	}
	return &DelayLine{buf: make([]int16, length)}, nil
}

// Len returns the delay length in samples.
func (d *DelayLine) Len() int { return len(d.buf) }

// Read returns the sample written Len() steps ago, or the initial zero if
// fewer samples have been written so far. The cursor does not move.
func (d *DelayLine) Read() int16 { return d.buf[d.pos] }

// Write overwrites the slot at the cursor with s and advances the cursor,
// wrapping at the end of the buffer. This is the only mutator; the FIR and
// IIR filters differ solely in what they pass here.
func (d *DelayLine) Write(s int16) {
	d.buf[d.pos] = s
	d.pos++
	if d.pos == len(d.buf) {
		d.pos = 0
	}
}

// Reset zero-fills the buffer and rewinds the cursor, returning the line to
// its freshly constructed state.
func (d *DelayLine) Reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
}
