// SPDX-License-Identifier: EPL-2.0

package pcmprint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/pcmprint/formats/wav"
	"github.com/ik5/pcmprint/synth"
	"github.com/ik5/pcmprint/utils"
)

// Print renders program at rate Hz.
//
// It returns nil if the rate is out of range or the program is malformed.
// The failure is logged at error level with the rate, the program duration,
// the failing byte offset and the program length, and no samples from voices
// that did render are returned. Hosts treat nil as silence.
func Print(program []byte, rate int, opts ...Option) []float32 {
	cfg := newConfig(opts)
	pcm, err := synth.Render(program, rate, cfg)
	if err != nil {
		logFailure(cfg.Logger, program, rate, err)
		return nil
	}
	return pcm
}

// PrintMono16 renders program and quantizes it to clamped 16-bit PCM.
func PrintMono16(program []byte, rate int, opts ...Option) ([]int16, error) {
	pcm, err := synth.Render(program, rate, newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return utils.Quantize16(pcm), nil
}

// PrintWAV renders program and writes it to w as a mono 16-bit WAV file.
// Nothing is written if the program fails to render.
func PrintWAV(w io.Writer, program []byte, rate int, opts ...Option) error {
	pcm16, err := PrintMono16(program, rate, opts...)
	if err != nil {
		return err
	}
	if err := wav.WriteWAV16(w, rate, pcm16); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func logFailure(log *slog.Logger, program []byte, rate int, err error) {
	durationMs := -1
	if d, derr := synth.Duration(program); derr == nil {
		durationMs = d
	}
	offset := -1
	var de *synth.DecodeError
	if errors.As(err, &de) {
		offset = de.Offset
	}
	log.Error("sound program failed to print",
		slog.Int("rate", rate),
		slog.Int("duration_ms", durationMs),
		slog.Int("offset", offset),
		slog.Int("len", len(program)),
		slog.Any("err", err))
}
