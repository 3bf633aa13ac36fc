// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3. The decoder returns
// an audio.Source yielding interleaved float32 samples in [-1.0, 1.0];
// output is always stereo, at the sample rate of the file:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// MP3 writing is not supported; processed audio is written out as WAV via
// the formats/wav package.
package mp3
