// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestDecoder_NotAIFFFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("certainly not an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

// fakeReader feeds canned int samples through the aiffReader interface.
type fakeReader struct {
	format  *goaudio.Format
	samples []int
	pos     int
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.samples[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamplesNormalizes(t *testing.T) {
	t.Parallel()

	s := &source{
		dec: &fakeReader{
			format:  &goaudio.Format{NumChannels: 1, SampleRate: 8000},
			samples: []int{0, 16384, -16384, 32767},
		},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %g, want %g", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec: &fakeReader{
			format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestReadSeeker_Seek(t *testing.T) {
	t.Parallel()

	rs := &readSeeker{data: []byte("0123456789")}

	if pos, err := rs.Seek(4, io.SeekStart); err != nil || pos != 4 {
		t.Errorf("Seek(4, start) = (%d, %v), want (4, nil)", pos, err)
	}
	if pos, err := rs.Seek(2, io.SeekCurrent); err != nil || pos != 6 {
		t.Errorf("Seek(2, current) = (%d, %v), want (6, nil)", pos, err)
	}
	if pos, err := rs.Seek(-3, io.SeekEnd); err != nil || pos != 7 {
		t.Errorf("Seek(-3, end) = (%d, %v), want (7, nil)", pos, err)
	}
	if _, err := rs.Seek(-20, io.SeekStart); err == nil {
		t.Error("Seek() before start succeeded, want error")
	}

	buf := make([]byte, 3)
	rs.Seek(7, io.SeekStart)
	n, err := rs.Read(buf)
	if err != nil || n != 3 || string(buf) != "789" {
		t.Errorf("Read() after seek = (%d, %v, %q)", n, err, buf[:n])
	}
}
