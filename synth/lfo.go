// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// LFO is a sinusoidal low-frequency modulator.
//
// A cents LFO yields a multiplicative detune factor around 1.0, a linear LFO
// yields an additive offset around 0.0. With a zero rate or depth the LFO
// never moves and yields its rest value.
type LFO struct {
	dp     float64
	depth  float64
	p      float64
	cents  bool
	active bool
}

// LFOParams are the decoded parameters of an LFO opcode.
// Rate is in cycles per sample.
type LFOParams struct {
	Rate  float64
	Depth float64
}

// NewCentsLFO returns a detune LFO. Depth is in cents.
func NewCentsLFO(rate, depth float64) *LFO {
	return newLFO(rate, depth, true)
}

// NewLinearLFO returns an additive LFO swinging between -depth and depth.
func NewLinearLFO(rate, depth float64) *LFO {
	return newLFO(rate, depth, false)
}

func newLFO(rate, depth float64, cents bool) *LFO {
	l := &LFO{cents: cents}
	if rate == 0 || depth == 0 {
		return l
	}
	l.active = true
	l.dp = rate * 2 * math.Pi
	l.depth = depth
	return l
}

// Active reports whether the LFO has phase state.
func (l *LFO) Active() bool { return l.active }

// Next advances the phase one sample and returns the modulation value.
func (l *LFO) Next() float64 {
	if !l.active {
		if l.cents {
			return 1
		}
		return 0
	}
	l.p += l.dp
	if l.p >= math.Pi {
		l.p -= 2 * math.Pi
	}
	v := math.Sin(l.p) * l.depth
	if l.cents {
		return math.Pow(2, v/1200)
	}
	return v
}
