// SPDX-License-Identifier: EPL-2.0

// Package audiotest has sources and sound programs shared by tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates a fixed number of frames from a wave function.
// It satisfies audio.Source without importing it.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     func(frame, channel int) float32

	chunk     int // max frames per read, 0 for unlimited
	failAt    int
	failErr   error
	closed    bool
	emptyRead bool
	reads     int
}

func NewSource(rate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave, failAt: -1}
}

func Silent(rate, channels, frames int) *Source {
	return Constant(rate, channels, frames, 0)
}

func Constant(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

func Sine(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// Ramp counts frames, with channel c offset by c*1000.
func Ramp(rate, channels, frames int) *Source {
	return NewSource(rate, channels, frames, func(frame, c int) float32 {
		return float32(frame + c*1000)
	})
}

// WithChunk caps every read at n frames.
func (s *Source) WithChunk(n int) *Source {
	s.chunk = n
	return s
}

// FailAt makes reads fail with err once frame is reached.
func (s *Source) FailAt(frame int, err error) *Source {
	s.failAt, s.failErr = frame, err
	return s
}

// WithEmptyReads makes every other read return nothing and no error.
func (s *Source) WithEmptyReads() *Source {
	s.emptyRead = true
	return s
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds to the first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.failAt >= 0 && s.pos >= s.failAt {
		return 0, s.failErr
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}
	s.reads++
	if s.emptyRead && s.reads%2 == 1 {
		return 0, nil
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.chunk > 0 {
		n = min(n, s.chunk)
	}
	if s.failAt >= 0 {
		n = min(n, s.failAt-s.pos)
	}
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
