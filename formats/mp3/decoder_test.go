// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"testing"
)

// fakeMP3 feeds canned PCM bytes through the mp3Reader interface.
type fakeMP3 struct {
	data []byte
	pos  int
	rate int
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func pcmBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(uint16(s))
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}

func TestSource_ReadSamplesConversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768, 32767, 1}
	s := &source{
		dec:        &fakeMP3{data: pcmBytes(samples), rate: 44100},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]float32, len(samples))
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(samples))
	}

	for i, want := range samples {
		got := int16(dst[i] * 32768)
		if got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeMP3{rate: 44100},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 16),
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not mpeg audio")))
	if err == nil {
		t.Error("Decode() succeeded on garbage input")
	}
}
