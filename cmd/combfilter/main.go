// SPDX-License-Identifier: EPL-2.0

// Command combfilter applies a comb filter to an audio file and writes the
// result as 16-bit PCM WAV.
//
// Usage:
//
//	combfilter [flags] <input.{wav|aiff|mp3|ogg}> <output.wav>
//
// The input format is picked by file extension. The stream can be resampled
// and downmixed to mono before filtering.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcomb"
	"github.com/ik5/audcomb/audio"
	"github.com/ik5/audcomb/comb"
	"github.com/ik5/audcomb/formats/aiff"
	"github.com/ik5/audcomb/formats/mp3"
	"github.com/ik5/audcomb/formats/vorbis"
	"github.com/ik5/audcomb/formats/wav"
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "combfilter: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	kindFlag := flag.String("type", "fir", "filter topology: fir (feedforward) or iir (feedback)")
	freq := flag.Float64("freq", 440, "comb frequency in Hz; the delay is one period at this frequency")
	gain := flag.Float64("gain", 0.5, "gain of the delayed tap")
	rate := flag.Int("rate", 0, "resample to this rate before filtering (0 keeps the source rate)")
	mono := flag.Bool("mono", false, "downmix to mono before filtering")
	block := flag.Int("block", 1024, "frames per processing block")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: combfilter [flags] <input.{wav|aiff|mp3|ogg}> <output.wav>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inPath := flag.Arg(0)
	outPath := flag.Arg(1)

	var kind comb.Kind
	switch *kindFlag {
	case "fir":
		kind = comb.FIR
	case "iir":
		kind = comb.IIR
	default:
		fatal("unknown filter type %q (want fir or iir)", *kindFlag)
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	ext := strings.TrimPrefix(filepath.Ext(inPath), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		fatal("unsupported format: %q", ext)
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		fatal("%v", err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		fatal("decode %s: %v", inPath, err)
	}
	defer src.Close()

	// Optional shaping ahead of the filter.
	var stream audio.Source = src
	if *rate > 0 && *rate != stream.SampleRate() {
		stream = audio.NewResampler(stream, *rate)
	}
	if *mono {
		stream = audio.NewMonoMixer(stream)
	}

	pcm16, outRate, err := audcomb.FilterSource16(stream, kind, *freq, *gain, *block)
	if err != nil {
		fatal("filter: %v", err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		fatal("%v", err)
	}
	defer outFile.Close()

	if err := wav.WritePCM16(outFile, outRate, stream.Channels(), pcm16); err != nil {
		fatal("write %s: %v", outPath, err)
	}

	fmt.Println("Wrote:", outPath)
}
