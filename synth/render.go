// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

const (
	MinRate = 200
	MaxRate = 200000

	// HeaderSize is the length of the big-endian duration that opens a program.
	HeaderSize = 2
)

// Config tunes a render. The zero value is ready to use.
type Config struct {
	// Logger receives one debug record per voice. Nil means slog.Default().
	Logger *slog.Logger
	// Seed drives the noise oscillator. Equal seeds give equal renders.
	Seed uint64
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// FrameCount returns the output length for durationMs at rate:
// ceil(durationMs*rate/1000).
func FrameCount(durationMs, rate int) int {
	return (durationMs*rate + 999) / 1000
}

// Duration returns the duration header of a program in milliseconds.
func Duration(src []byte) (int, error) {
	if len(src) < HeaderSize {
		return 0, ErrShortProgram
	}
	return int(binary.BigEndian.Uint16(src)), nil
}

// Render prints a whole sound program at rate.
//
// Every voice is decoded, rendered into a scratch buffer and summed into the
// output in program order. Any failure discards all work: the result is
// either a complete buffer or an error.
func Render(src []byte, rate int, cfg Config) ([]float32, error) {
	if rate < MinRate || rate > MaxRate {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	durationMs, err := Duration(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", err, len(src))
	}
	if durationMs == 0 {
		return nil, ErrZeroDuration
	}

	log := cfg.logger()
	framec := FrameCount(durationMs, rate)
	dst := make([]float32, framec)
	scratch := make([]float32, framec)
	noise := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	voicec := 0
	for pos := HeaderSize; pos < len(src); {
		for pos < len(src) && Opcode(src[pos]) == OpVoice {
			pos++
		}
		if pos >= len(src) {
			break
		}
		voice, next, err := DecodeVoice(src, pos, rate)
		if err != nil {
			return nil, err
		}
		if next <= pos {
			return nil, &DecodeError{Offset: pos, Err: ErrStalled}
		}
		voice.Render(scratch, noise)
		for i := range dst {
			dst[i] += scratch[i]
		}
		log.Debug("rendered voice",
			slog.Int("voice", voicec),
			slog.Int("offset", pos),
			slog.String("oscillator", voice.Oscillator.String()),
			slog.Int("ops", len(voice.Ops)))
		voicec++
		pos = next
	}
	return dst, nil
}
