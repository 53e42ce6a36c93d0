// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// Peak returns the largest absolute sample value.
func Peak(samples []float32) float64 {
	var peak float64
	for _, s := range samples {
		peak = max(peak, math.Abs(float64(s)))
	}
	return peak
}

// RMS returns the root mean square of samples, zero for an empty slice.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Diff summarizes how far one buffer is from another.
type Diff struct {
	Peak float64 // largest absolute difference over the overlap
	RMS  float64 // RMS of the difference over the overlap
	Got  int
	Want int
}

// Overlap is the number of samples both buffers had.
func (d Diff) Overlap() int { return min(d.Got, d.Want) }

// Compare diffs got against want sample by sample. Only the shorter length
// is compared; Got and Want record both lengths.
func Compare(got, want []float32) Diff {
	d := Diff{Got: len(got), Want: len(want)}
	n := d.Overlap()
	if n == 0 {
		return d
	}
	var sum float64
	for i := range n {
		e := float64(got[i]) - float64(want[i])
		d.Peak = max(d.Peak, math.Abs(e))
		sum += e * e
	}
	d.RMS = math.Sqrt(sum / float64(n))
	return d
}
