// SPDX-License-Identifier: EPL-2.0

// Package playback plays printed buffers on the default audio device.
//
// It is the consumer side of a print: the samples go out as mono float32
// through github.com/ebitengine/oto/v3, clamped to [-1, 1] on the way. oto
// allows a single context per process, so the first Play fixes the device
// rate and later calls at another rate fail with ErrRateMismatch. Resample
// with audio.NewResampler, or print at the same rate, to avoid it.
package playback
