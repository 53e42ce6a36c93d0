// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Collect drains src into one interleaved buffer, reading bufSize samples at
// a time. A bufSize of zero or less uses src.BufSize(). A source that keeps
// returning nothing without an error fails with io.ErrNoProgress.
func Collect(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	channels := src.Channels()
	bufSize = max(bufSize-bufSize%channels, channels)

	buf := make([]float32, bufSize)
	var out []float32
	for empty := 0; ; {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("collect: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty == maxEmptyReads {
			return out, fmt.Errorf("collect: %w", io.ErrNoProgress)
		}
	}
}

// Conform returns src as mono at rate, adding a resampler and a mono mixer
// only where they are needed.
func Conform(src Source, rate int) Source {
	if src.SampleRate() != rate {
		src = NewResampler(src, rate)
	}
	if src.Channels() != 1 {
		src = NewMonoMixer(src)
	}
	return src
}
