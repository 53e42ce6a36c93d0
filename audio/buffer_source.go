// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource streams a finished mono buffer, typically a render.
type BufferSource struct {
	samples []float32
	rate    int
	pos     int
}

// NewBufferSource wraps samples without copying them.
func NewBufferSource(samples []float32, rate int) *BufferSource {
	return &BufferSource{samples: samples, rate: rate}
}

func (b *BufferSource) SampleRate() int { return b.rate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len returns the number of samples not yet read.
func (b *BufferSource) Len() int { return len(b.samples) - b.pos }

// Reset rewinds to the first sample.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}
	n := copy(dst, b.samples[b.pos:])
	b.pos += n
	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
