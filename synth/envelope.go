// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// holdFrames is the leg length used once an envelope has run out of points.
const holdFrames = math.MaxInt32

// Point is one breakpoint of an Envelope.
// Framec is the distance in samples from the previous point, at least 1.
type Point struct {
	Framec int
	Value  float64
}

// Envelope is a piecewise-linear breakpoint curve evaluated one sample at a time.
//
// Step costs the same no matter how many points the curve has: the envelope
// only tracks the current leg, its remaining length and its per-sample slope.
type Envelope struct {
	Value0 float64
	Points []Point

	pointp int
	v      float64
	dv     float64
	ttl    int
}

// NewEnvelope returns a reset envelope starting at value0.
// Points with a Framec below 1 are stretched to 1.
func NewEnvelope(value0 float64, points ...Point) *Envelope {
	e := &Envelope{Value0: value0, Points: points}
	for i := range e.Points {
		if e.Points[i].Framec < 1 {
			e.Points[i].Framec = 1
		}
	}
	e.Reset()
	return e
}

// ConstantEnvelope returns an envelope that yields v forever.
func ConstantEnvelope(v float64) *Envelope {
	return NewEnvelope(v)
}

// Reset rewinds the envelope to Value0 and the first leg.
func (e *Envelope) Reset() {
	e.pointp = 0
	e.v = e.Value0
	if len(e.Points) > 0 {
		e.ttl = e.Points[0].Framec
		e.dv = (e.Points[0].Value - e.v) / float64(e.ttl)
		return
	}
	e.ttl = holdFrames
	e.dv = 0
}

// Scale multiplies every value of the curve by k, then resets it.
func (e *Envelope) Scale(k float64) {
	e.Value0 *= k
	for i := range e.Points {
		e.Points[i].Value *= k
	}
	e.Reset()
}

// Step advances one sample and returns the new value.
// Call it exactly once per output sample.
func (e *Envelope) Step() float64 {
	if e.ttl < 1 {
		e.advance()
	}
	e.ttl--
	e.v += e.dv
	return e.v
}

func (e *Envelope) advance() {
	e.pointp++
	if e.pointp >= len(e.Points) {
		e.pointp = len(e.Points)
		if len(e.Points) > 0 {
			e.v = e.Points[len(e.Points)-1].Value
		} else {
			e.v = e.Value0
		}
		e.dv = 0
		e.ttl = holdFrames
		return
	}
	e.v = e.Points[e.pointp-1].Value
	e.ttl = e.Points[e.pointp].Framec
	e.dv = (e.Points[e.pointp].Value - e.v) / float64(e.ttl)
}

// Final returns the value the envelope settles on.
func (e *Envelope) Final() float64 {
	if len(e.Points) == 0 {
		return e.Value0
	}
	return e.Points[len(e.Points)-1].Value
}

// Frames returns the total length of all legs in samples.
func (e *Envelope) Frames() int {
	n := 0
	for _, p := range e.Points {
		n += p.Framec
	}
	return n
}
