// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/ktye/fft"
)

// MaxWindow caps the transform size used by DominantFrequency.
const MaxWindow = 1 << 16

// window returns the largest power of two not above n and MaxWindow.
func window(n int) int {
	n = min(n, MaxWindow)
	if n < 2 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

func hann(n int) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
	}
	return env
}

// Spectrum returns the magnitudes of bins 0 through n/2 of a Hann-windowed
// transform over the first n samples, n being the window chosen for
// len(samples).
func Spectrum(samples []float32) ([]float64, error) {
	n := window(len(samples))
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrTooShort, len(samples))
	}
	f, err := fft.New(n)
	if err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}

	env := hann(n)
	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(float64(samples[i])*env[i], 0)
	}
	buf = f.Transform(buf)

	mags := make([]float64, n/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(buf[i])
	}
	return mags, nil
}

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak, refined by parabolic interpolation between neighbouring bins.
func DominantFrequency(samples []float32, rate int) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrRate, rate)
	}
	mags, err := Spectrum(samples)
	if err != nil {
		return 0, err
	}

	best := 1 // skip DC
	for k := 2; k < len(mags); k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}
	if mags[best] <= 1e-9 {
		return 0, ErrSilent
	}

	pos := float64(best)
	if best > 1 && best < len(mags)-1 {
		a, b, c := mags[best-1], mags[best], mags[best+1]
		if den := a - 2*b + c; den != 0 {
			pos += 0.5 * (a - c) / den
		}
	}
	n := 2 * (len(mags) - 1)
	return pos * float64(rate) / float64(n), nil
}
