// SPDX-License-Identifier: EPL-2.0

// Package analysis inspects printed sounds.
//
// Peak, RMS and Compare give quick numbers for checking a render against a
// reference recording. DominantFrequency runs a Hann-windowed FFT to find the
// strongest partial, which is how the CLI's analyze command reports pitch.
package analysis
