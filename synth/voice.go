// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"
)

// Voice is one decoded oscillator plus its post-processing chain.
// A Voice is built for a single render and mutated by it.
type Voice struct {
	Oscillator Oscillator
	Shape      Shape
	Harmonics  []float64 // normalized weights, harmonic k at index k-1
	FMRatio    float64   // modulator rate multiplier
	FMRange    float64   // deviation scale

	Rate     *Envelope // cycles per sample
	RateLFO  LFOParams // depth in cents
	Range    *Envelope // 0..1, FM only
	RangeLFO LFOParams // FM only

	Ops []Op
}

// Render overwrites dst with the voice's output.
// r supplies noise and may be nil for voices that are not noise.
func (v *Voice) Render(dst []float32, r *rand.Rand) {
	switch v.Oscillator {
	case OscShape:
		oscillateShape(dst, v.Rate, NewCentsLFO(v.RateLFO.Rate, v.RateLFO.Depth), v.Shape.At)
	case OscHarmonics:
		oscillateTable(dst, v.Rate, NewCentsLFO(v.RateLFO.Rate, v.RateLFO.Depth), HarmonicTable(v.Harmonics))
	case OscFM:
		v.Rate.Scale(2 * math.Pi)
		rng := v.Range
		if rng != nil {
			rng.Scale(v.FMRange)
		} else {
			rng = ConstantEnvelope(v.FMRange)
		}
		oscillateFM(dst, v.Rate,
			NewCentsLFO(v.RateLFO.Rate, v.RateLFO.Depth),
			v.FMRatio, rng,
			NewLinearLFO(v.RangeLFO.Rate, v.RangeLFO.Depth))
	case OscNoise:
		if r == nil {
			r = rand.New(rand.NewPCG(0, 0))
		}
		oscillateNoise(dst, r)
	default:
		// Nothing downstream can bring silence back.
		fill(dst, 0)
		return
	}
	ApplyOps(dst, v.Ops)
}
