// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Coefs are the taps of a second-order recursive filter, in the order
// b0, b1, b2, a1, a2:
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] + a1*y[n-1] + a2*y[n-2]
//
// The feedback taps are added, not subtracted.
type Coefs [5]float64

// Frequencies below are normalized: Hz divided by the sample rate.

// BandpassCoefs returns a resonator centered on mid with bandwidth wid.
func BandpassCoefs(mid, wid float64) Coefs {
	r, cosw, k := resonator(mid, wid)
	return Coefs{
		1 - k,
		2 * (k - r) * cosw,
		r*r - k,
		2 * r * cosw,
		-r * r,
	}
}

// NotchCoefs returns the inverse of BandpassCoefs.
func NotchCoefs(mid, wid float64) Coefs {
	r, cosw, k := resonator(mid, wid)
	return Coefs{
		k,
		-2 * k * cosw,
		k,
		2 * r * cosw,
		-r * r,
	}
}

func resonator(mid, wid float64) (r, cosw, k float64) {
	r = 1 - 3*wid
	cosw = math.Cos(math.Pi * 2 * mid)
	k = (1 - 2*r*cosw + r*r) / (2 - 2*cosw)
	return r, cosw, k
}

// prototype is the analog pole pair shared by the lopass and hipass designs,
// bilinear-transformed at a fixed half-radian prewarp.
type prototype struct {
	x0, x1, x2 float64
	y1, y2     float64
	d          float64
}

func newPrototype() prototype {
	rp := -math.Cos(math.Pi / 2)
	ip := math.Sin(math.Pi / 2)
	t := 2 * math.Tan(0.5)
	m := rp*rp + ip*ip
	d := 4 - 4*rp*t + m*t*t
	return prototype{
		x0: (t * t) / d,
		x1: (2 * t * t) / d,
		x2: (t * t) / d,
		y1: (8 - 2*m*t*t) / d,
		y2: (-4 - 4*rp*t - m*t*t) / d,
		d:  d,
	}
}

// LopassCoefs returns a lowpass with cutoff freq.
func LopassCoefs(freq float64) Coefs {
	p := newPrototype()
	w := 2 * math.Pi * freq
	k := math.Sin(0.5-w/2) / math.Sin(0.5+w/2)
	return Coefs{
		(p.x0 - p.x1*k + p.x2*k*k) / p.d,
		(-2*p.x0*k + p.x1 + p.x1*k*k - 2*p.x2*k) / p.d,
		(p.x0*k*k - p.x1*k + p.x2) / p.d,
		(2*k + p.y1 + p.y1*k*k - 2*p.y2*k) / p.d,
		(-k*k - p.y1*k + p.y2) / p.d,
	}
}

// HipassCoefs returns a highpass with cutoff freq.
func HipassCoefs(freq float64) Coefs {
	p := newPrototype()
	w := 2 * math.Pi * freq
	k := -math.Cos(w/2+0.5) / math.Cos(w/2-0.5)
	return Coefs{
		-(p.x0 - p.x1*k + p.x2*k*k) / p.d,
		(-2*p.x0*k + p.x1 + p.x1*k*k - 2*p.x2*k) / p.d,
		(p.x0*k*k - p.x1*k + p.x2) / p.d,
		-(2*k + p.y1 + p.y1*k*k - 2*p.y2*k) / p.d,
		(-k*k - p.y1*k + p.y2) / p.d,
	}
}
