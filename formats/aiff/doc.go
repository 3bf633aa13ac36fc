// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// Decoding is built on github.com/go-audio/aiff. Only 16-bit PCM content is
// accepted. The decoder returns an audio.Source yielding interleaved
// float32 samples in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// Writing AIFF files is not supported; processed audio is written out as
// WAV via the formats/wav package.
package aiff
