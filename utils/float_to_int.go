// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
// -1 maps to math.MinInt16 and 1 to math.MaxInt16. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}
	if x >= 1 {
		return math.MaxInt16
	}
	if x <= -1 {
		return math.MinInt16
	}
	// float32 rounding could carry x*32768 up to 32768.
	return int16(float64(x) * 32768)
}

// Quantize16 converts a whole render to 16-bit PCM.
func Quantize16(src []float32) []int16 {
	dst := make([]int16, len(src))
	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}
	return dst
}
