// SPDX-License-Identifier: EPL-2.0

// Package comb implements feedforward (FIR) and feedback (IIR) comb filters
// for multichannel 16-bit PCM audio.
//
// A comb filter adds a delayed, gain-scaled copy of a signal to itself:
//
//	FIR: y[n] = x[n] + gain * x[n-delay]
//	IIR: y[n] = x[n] + gain * y[n-delay]
//
// The delay is derived from a target frequency, so frequencies whose period
// matches the delay interfere constructively (or destructively for negative
// gain). The IIR variant feeds its own output back, producing resonance when
// |gain| >= 1 and decaying echoes when |gain| < 1.
//
// # Block Processing
//
// Audio is processed in channel-major blocks of any size:
//
//	f, err := comb.New(comb.IIR, 48000, 480, 0.8, 2)
//	if err != nil {
//	    // handle error
//	}
//	block := [][]int16{left, right}
//	err = f.ProcessInPlace(block)
//
// Per-channel delay-line state persists across calls, so chunking a stream
// into blocks of different sizes never changes the output: processing a
// signal in one call or in many produces bit-identical results.
//
// # Overflow Behavior
//
// Per-sample arithmetic is performed in float64 and saturated to the int16
// range at the final narrowing. Under sustained resonant feedback the output
// pins at full scale instead of wrapping; no undefined values are produced.
//
// # Concurrency
//
// A Filter instance must be driven sequentially. Distinct instances share no
// state and may be used from different goroutines without locking.
package comb
