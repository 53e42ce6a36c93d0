// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"math"
)

const bytesPerSample = 4

// sampleReader streams samples as clamped little-endian float32 bytes.
type sampleReader struct {
	samples []float32
	pos     int
	partial []byte // rest of a sample split across reads
}

func newSampleReader(samples []float32) *sampleReader {
	return &sampleReader{samples: samples}
}

func (r *sampleReader) Read(p []byte) (int, error) {
	n := copy(p, r.partial)
	r.partial = r.partial[n:]

	for n+bytesPerSample <= len(p) && r.pos < len(r.samples) {
		binary.LittleEndian.PutUint32(p[n:], r.next())
		n += bytesPerSample
	}
	if n < len(p) && len(r.partial) == 0 && r.pos < len(r.samples) {
		var b [bytesPerSample]byte
		binary.LittleEndian.PutUint32(b[:], r.next())
		k := copy(p[n:], b[:])
		r.partial = b[k:]
		n += k
	}

	if n == 0 && r.pos >= len(r.samples) {
		return 0, io.EOF
	}
	return n, nil
}

func (r *sampleReader) next() uint32 {
	s := min(max(r.samples[r.pos], -1), 1)
	r.pos++
	return math.Float32bits(s)
}
