// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the full-scale magnitude of signed integer PCM at bitDepth.
// Unknown depths fall back to 16 bits.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(int64(1) << (bitDepth - 1))
	}
	return 32768
}

// IntsToFloat32 normalizes integer PCM at bitDepth into dst and returns the
// number of samples written, min(len(dst), len(src)).
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	scale := PCMScale(bitDepth)
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}
	return n
}
