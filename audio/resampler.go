// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// maxEmptyReads bounds how often a source may return no samples and no error.
const maxEmptyReads = 100

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation. Channel count is preserved. When downsampling, two one-pole
// lowpass stages at the destination Nyquist frequency run ahead of
// interpolation.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// Output frame j sits at source position j*srcRate/dstRate, kept exact
	// in integers so the output length never drifts.
	out   int64
	frame int64 // source index of window[1]

	// window holds frames t-1, t, t+1 and t+2; live marks frames that came
	// from src rather than edge padding.
	window [4][]float32
	live   [4]bool
	primed bool

	in      []float32
	inPos   int
	inLen   int
	srcDone bool

	alpha float32 // zero disables the lowpass
	lp    [2][]float32
}

// NewResampler resamples src to dstRate, which must be positive.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		in:       make([]float32, max(src.BufSize(), 256)/channels*channels),
	}
	if r.srcRate > r.dstRate {
		cutoff := 0.5 * float64(dstRate) / float64(src.SampleRate())
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff))
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	for i := range r.lp {
		r.lp[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// readFrame copies the next source frame into dst.
// It reports false once the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for empty := 0; r.inPos+r.channels > r.inLen; empty++ {
		if r.srcDone {
			return false, nil
		}
		if empty == maxEmptyReads {
			return false, fmt.Errorf("resampler: %w", io.ErrNoProgress)
		}
		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}
	}
	frame := r.in[r.inPos : r.inPos+r.channels]
	r.inPos += r.channels

	if r.alpha == 0 {
		copy(dst, frame)
		return true, nil
	}
	a, b := r.lp[0], r.lp[1]
	for c, x := range frame {
		a[c] += r.alpha * (x - a[c])
		b[c] += r.alpha * (a[c] - b[c])
		dst[c] = b[c]
	}
	return true, nil
}

// shift slides the window one frame forward, padding with the last frame.
func (r *Resampler) shift() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.live[:], r.live[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.live[3] = ok
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil || !ok {
		return err
	}
	if r.alpha != 0 {
		// Start the lowpass settled on the first frame.
		copy(r.lp[0], r.window[1])
		copy(r.lp[1], r.window[1])
	}
	copy(r.window[0], r.window[1])
	r.live[0], r.live[1] = true, true
	// Fill t+1 and t+2 without dropping t.
	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.live[i] = ok
	}
	return nil
}

// ReadSamples fills dst, whose length must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		r.primed = true
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		at := r.out * r.srcRate
		for r.frame < at/r.dstRate {
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
			r.frame++
		}
		if !r.live[1] {
			return written * r.channels, io.EOF
		}

		x := float32(at%r.dstRate) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = catmullRom(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++
		r.out++
	}
	return written * r.channels, nil
}

// catmullRom interpolates between y1 (x=0) and y2 (x=1).
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)
	return ((a*x+b)*x+c)*x + y1
}
