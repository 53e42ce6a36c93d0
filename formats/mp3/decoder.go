// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pcmprint/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels   = 2
	frameBytes = 2 * channels
)

// pcmReader is the part of gomp3.Decoder a source uses.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmReader
	buf  []byte
	tail int // bytes of a partial frame kept at the front of buf
	done bool
}

func newSource(dec pcmReader) *source {
	return &source{dec: dec, buf: make([]byte, 8192)}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return len(s.buf) / 2 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}
	if need := frames * frameBytes; len(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.tail])
		s.buf = grown
	}

	n, err := s.dec.Read(s.buf[s.tail : frames*frameBytes])
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("mp3: %w", err)
	}
	avail := s.tail + n
	whole := avail - avail%frameBytes

	samples := whole / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768
	}
	s.tail = copy(s.buf, s.buf[whole:avail])

	if err != nil {
		s.done = true
		return samples, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return newSource(dec), nil
}
