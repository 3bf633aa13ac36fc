// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which already emits
// float32 samples, so no conversion is needed. The decoder returns an
// audio.Source yielding interleaved samples in [-1.0, 1.0]:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// Vorbis writing is not supported; processed audio is written out as WAV
// via the formats/wav package.
package vorbis
