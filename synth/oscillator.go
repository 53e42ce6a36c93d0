// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// WaveTableSize is the length of a harmonics wavetable.
const WaveTableSize = 1024

// Oscillator selects the signal generator of a voice.
type Oscillator uint8

const (
	OscSilence Oscillator = iota
	OscNoise
	OscShape
	OscHarmonics
	OscFM
)

func (o Oscillator) String() string {
	switch o {
	case OscSilence:
		return "silence"
	case OscNoise:
		return "noise"
	case OscShape:
		return "shape"
	case OscHarmonics:
		return "harmonics"
	case OscFM:
		return "fm"
	}
	return fmt.Sprintf("oscillator(%d)", uint8(o))
}

// Shape is a closed-form periodic waveform.
type Shape uint8

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeRampUp
	ShapeRampDown
	ShapeTriangle
)

var shapeNames = [...]string{"sine", "square", "rampup", "rampdown", "triangle"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool { return s <= ShapeTriangle }

// At evaluates the shape at phase p in [0,1).
func (s Shape) At(p float64) float64 {
	switch s {
	case ShapeSine:
		return math.Sin(p * 2 * math.Pi)
	case ShapeSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case ShapeRampUp:
		return p*2 - 1
	case ShapeRampDown:
		return 1 - p*2
	case ShapeTriangle:
		if p < 0.5 {
			return p*4 - 1
		}
		return 1 - (p-0.5)*4
	}
	return 0
}

// HarmonicTable sums sine partials into a WaveTableSize wavetable.
// coefs[k-1] weights harmonic k; zero weights are skipped.
func HarmonicTable(coefs []float64) []float32 {
	wave := make([]float32, WaveTableSize)
	for i, level := range coefs {
		if level == 0 {
			continue
		}
		step := float64(i+1) * 2 * math.Pi / WaveTableSize
		for j := range wave {
			wave[j] = float32(float64(wave[j]) + math.Sin(step*float64(j))*level)
		}
	}
	return wave
}

// oscillateShape drives phase through [0,1) and samples fn.
func oscillateShape(dst []float32, rate *Envelope, lfo *LFO, fn func(p float64) float64) {
	p := 0.0
	for i := range dst {
		dst[i] = float32(fn(p))
		p += rate.Step() * lfo.Next()
		if p >= 1 {
			p -= math.Floor(p)
		}
	}
}

func oscillateTable(dst []float32, rate *Envelope, lfo *LFO, wave []float32) {
	n := len(wave)
	oscillateShape(dst, rate, lfo, func(p float64) float64 {
		return float64(wave[int(math.Round(p*float64(n)))%n])
	})
}

// oscillateFM runs a two-operator FM pair. rate must be in radians per sample
// and rng in absolute deviation.
func oscillateFM(dst []float32, rate *Envelope, rateLFO *LFO, ratio float64, rng *Envelope, rngLFO *LFO) {
	carp, modp := 0.0, 0.0
	for i := range dst {
		base := rate.Step() * rateLFO.Next()
		dst[i] = float32(math.Sin(carp))
		mod := math.Sin(modp) + rngLFO.Next()
		modp += base * ratio
		mod *= base * rng.Step()
		carp += base + mod
		modp = wrapPhase(modp)
		carp = wrapPhase(carp)
	}
}

// wrapPhase folds a phase accumulator back into [-pi, pi).
// The cost is constant however many periods p has run ahead.
func wrapPhase(p float64) float64 {
	if p >= -math.Pi && p < math.Pi {
		return p
	}
	p = math.Mod(p+math.Pi, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	if p >= 2*math.Pi {
		p = 0
	}
	return p - math.Pi
}

func oscillateNoise(dst []float32, r *rand.Rand) {
	for i := range dst {
		dst[i] = float32(r.Float64()*2 - 1)
	}
}

func fill(dst []float32, v float32) {
	for i := range dst {
		dst[i] = v
	}
}
