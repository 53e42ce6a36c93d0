// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer decoders to audio.Source.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pcmprint/utils"
)

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a Reader as normalized float32.
type Source struct {
	r        Reader
	rate     int
	channels int
	bitDepth int
	buf      *goaudio.IntBuffer
	done     bool
}

func New(r Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		r:        r,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
		buf:      &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth},
	}
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if c := cap(s.buf.Data); c > 0 {
		return c
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.r.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("pcm: %w", err)
	}
	n = utils.IntsToFloat32(dst, s.buf.Data[:n], s.bitDepth)
	if n < want || err != nil {
		s.done = true
		return n, io.EOF
	}
	return n, nil
}

// ReadSeeker returns r itself when it can seek, or an in-memory copy.
// The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
