// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, which handles RIFF chunk
// walking, padding and the assorted layout quirks of real-world files.
// Only PCM 16-bit content is accepted; any channel count and sample rate
// are supported.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved samples as
// float32 values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// WritePCM16 writes interleaved 16-bit PCM with any channel count:
//
//	// stereo: L R L R ...
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, 8000, 2, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the content is not 16-bit PCM
//   - ErrUnsupportedWavLayout: the file's format chunk is unusable
//   - ErrInvalidChannelCount, ErrPartialFrame: writer argument errors
package wav
