// SPDX-License-Identifier: EPL-2.0

// Package audcomb provides a comb filter engine for digital audio in Go.
//
// The engine applies feedforward (FIR) or feedback (IIR) comb filters to
// multichannel 16-bit PCM streams. Filtering is block based and bit stable:
// the per-channel delay-line state persists across blocks, so any chunking
// of a stream produces identical output.
//
// # Quick Start
//
// The simplest way to filter a decoded stream is FilterSource16:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Apply an IIR comb at 440 Hz with 0.8 feedback gain
//	samples, rate, _ := audcomb.FilterSource16(src, comb.IIR, 440, 0.8, 1024)
//
//	// samples is interleaved int16 PCM, ready for wav.WritePCM16
//
// # Building Blocks
//
// For more control, compose the pieces directly:
//
//	filter, _ := comb.New(comb.FIR, src.SampleRate(), 440, -1, src.Channels())
//	blocks, _ := audio.NewBlockReader(src, 1024)
//	for {
//	    block, frames, err := blocks.ReadBlock()
//	    if frames > 0 {
//	        filter.ProcessInPlace(block)
//	    }
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The audio package also provides a Resampler and MonoMixer for shaping a
// stream before it reaches the filter.
//
// # Format Decoders
//
// Each supported container has its own decoder package:
//
//	wav.Decoder{}    // formats/wav,    PCM 16-bit
//	mp3.Decoder{}    // formats/mp3
//	vorbis.Decoder{} // formats/vorbis
//	aiff.Decoder{}   // formats/aiff,   PCM 16-bit
//
// All decoders return an audio.Source. Processed audio is written back out
// with wav.WritePCM16, which handles any channel count.
//
// # Overflow Safety
//
// Feedback filters can grow their output without bound at resonant
// frequencies. The engine computes each sample in a widened range and
// saturates at the int16 boundary, so sustained resonance pins at full
// scale instead of wrapping.
package audcomb
