// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio streaming primitives.
//
// This package contains the building blocks that feed the comb filter
// engine:
//   - Source interface for audio input
//   - BlockReader for turning a stream into channel-major int16 blocks
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Block Plumbing
//
// Filters in the comb package consume channel-major blocks of int16 PCM.
// BlockReader bridges the two worlds:
//
//	br, _ := audio.NewBlockReader(source, 1024)
//	for {
//	    block, frames, err := br.ReadBlock()
//	    if frames > 0 {
//	        filter.ProcessInPlace(block)
//	    }
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The Interleave16 and Deinterleave16 helpers convert between interleaved
// sample slices and channel-major blocks.
//
// # Resampling and Downmixing
//
// The Resampler changes the sample rate of audio using cubic interpolation,
// and the MonoMixer averages channels down to mono. Both wrap any Source
// and implement Source themselves:
//
//	resampled := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampled)
//
// These are useful ahead of a comb filter: the derived delay length depends
// on the sample rate, so pinning the rate first keeps filter configuration
// predictable across inputs.
//
// # Sample Format
//
// Streamed samples are float32 in [-1.0, 1.0]; block processing uses int16
// PCM. Conversion clamps symmetrically, never wraps.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
