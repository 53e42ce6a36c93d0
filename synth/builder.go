// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"encoding/binary"
	"fmt"
)

// EnvPoint is an encoded envelope breakpoint: a delay in milliseconds from
// the previous point and a raw 16-bit target value.
type EnvPoint struct {
	Ms    uint16
	Value uint16
}

// Builder encodes sound programs byte by byte.
//
//	prog, err := synth.NewBuilder(250).
//		Shape(synth.ShapeSine).
//		Rate(440).
//		Level(0, synth.EnvPoint{Ms: 10, Value: 0xffff}, synth.EnvPoint{Ms: 240, Value: 0}).
//		Build()
type Builder struct {
	buf []byte
	err error
}

// NewBuilder starts a program lasting durationMs.
func NewBuilder(durationMs uint16) *Builder {
	return &Builder{buf: binary.BigEndian.AppendUint16(nil, durationMs)}
}

// Build returns the encoded program, or the first encoding error.
func (b *Builder) Build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return append([]byte(nil), b.buf...), nil
}

// MustBuild is Build for fixtures that are known to be valid.
func (b *Builder) MustBuild() []byte {
	prog, err := b.Build()
	if err != nil {
		panic(err)
	}
	return prog
}

func (b *Builder) op(o Opcode, payload ...byte) *Builder {
	b.buf = append(b.buf, byte(o))
	b.buf = append(b.buf, payload...)
	return b
}

func (b *Builder) u16(v uint16) *Builder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

// Voice ends the current voice.
func (b *Builder) Voice() *Builder { return b.op(OpVoice) }

func (b *Builder) Shape(s Shape) *Builder { return b.op(OpShape, byte(s)) }

func (b *Builder) Noise() *Builder { return b.op(OpNoise) }

// Harmonics sets additive partial weights, 255 being full level.
func (b *Builder) Harmonics(coefs ...byte) *Builder {
	if len(coefs) > 0xff {
		b.fail(ErrTooManyCoefs)
		return b
	}
	b.op(OpHarmonics, byte(len(coefs)))
	b.buf = append(b.buf, coefs...)
	return b
}

// FM selects the FM oscillator. Both values are encoded as 8.8 fixed point.
func (b *Builder) FM(ratio, rng float64) *Builder {
	return b.op(OpFM).u16(Fixed88(ratio)).u16(Fixed88(rng))
}

// Rate sets the pitch envelope in Hz.
func (b *Builder) Rate(hz uint16, points ...EnvPoint) *Builder {
	return b.envelope(OpRate, hz, points)
}

// RateLFO detunes by cents at hz.
func (b *Builder) RateLFO(hz float64, cents uint16) *Builder {
	return b.op(OpRateLFO).u16(Fixed88(hz)).u16(cents)
}

// Range sets the FM range envelope, 0xffff being the full FM range.
func (b *Builder) Range(v0 uint16, points ...EnvPoint) *Builder {
	return b.envelope(OpRange, v0, points)
}

// RangeLFO adds depth*sin to the FM modulator at hz.
func (b *Builder) RangeLFO(hz, depth float64) *Builder {
	return b.op(OpRangeLFO).u16(Fixed88(hz)).u16(Fixed88(depth))
}

// Level appends an amplitude envelope, 0xffff being unity.
func (b *Builder) Level(v0 uint16, points ...EnvPoint) *Builder {
	return b.envelope(OpLevel, v0, points)
}

func (b *Builder) Gain(g float64) *Builder { return b.op(OpGain).u16(Fixed88(g)) }

func (b *Builder) Clip(threshold byte) *Builder { return b.op(OpClip, threshold) }

func (b *Builder) Delay(ms uint16, dry, wet, store, feedback byte) *Builder {
	b.op(OpDelay).u16(ms)
	b.buf = append(b.buf, dry, wet, store, feedback)
	return b
}

func (b *Builder) Bandpass(mid, width uint16) *Builder {
	return b.op(OpBandpass).u16(mid).u16(width)
}

func (b *Builder) Notch(mid, width uint16) *Builder {
	return b.op(OpNotch).u16(mid).u16(width)
}

func (b *Builder) Lopass(hz uint16) *Builder { return b.op(OpLopass).u16(hz) }

func (b *Builder) Hipass(hz uint16) *Builder { return b.op(OpHipass).u16(hz) }

// Raw appends bytes verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *Builder) envelope(o Opcode, v0 uint16, points []EnvPoint) *Builder {
	if len(points) > 0xff {
		b.fail(fmt.Errorf("%s: %w", o, ErrTooManyPoints))
		return b
	}
	b.op(o).u16(v0)
	b.buf = append(b.buf, byte(len(points)))
	for _, p := range points {
		b.u16(p.Ms).u16(p.Value)
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Fixed88 encodes f as unsigned 8.8 fixed point, saturating.
func Fixed88(f float64) uint16 {
	v := int(f * 256)
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// Unit16 encodes f in 0..1 as a 0.16 fraction, saturating at 0xffff.
func Unit16(f float64) uint16 {
	v := int(f * 65536)
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}
