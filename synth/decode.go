// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"encoding/binary"
	"math"
)

// voiceConfig collects oscillator commands until the voice ends.
// Which oscillator wins does not depend on command order.
type voiceConfig struct {
	shape     Shape
	hasShape  bool
	harmonics []float64
	hasHarm   bool
	noise     bool
}

// Command is one bounds-checked command of a sound program.
type Command struct {
	Offset  int
	Opcode  Opcode
	Payload []byte
}

// nextCommand reads the command at src[pos] and checks that its payload fits.
func nextCommand(src []byte, pos int) (Command, error) {
	op := Opcode(src[pos])
	n, err := payloadLen(op, src, pos)
	if err != nil {
		return Command{}, &DecodeError{Offset: pos, Opcode: op, Err: err}
	}
	if pos+1+n > len(src) {
		return Command{}, &DecodeError{Offset: pos, Opcode: op, Err: ErrUnexpectedEOF}
	}
	return Command{Offset: pos, Opcode: op, Payload: src[pos+1 : pos+1+n]}, nil
}

// DecodeVoice decodes the voice starting at src[pos] and returns it with the
// offset just past its last command. It stops at a voice separator or at the
// end of src, and does not consume the separator.
func DecodeVoice(src []byte, pos, rate int) (*Voice, int, error) {
	v := &Voice{}
	var cfg voiceConfig
	for pos < len(src) && Opcode(src[pos]) != OpVoice {
		cmd, err := nextCommand(src, pos)
		if err != nil {
			return nil, pos, err
		}
		if err := v.apply(&cfg, cmd, rate); err != nil {
			return nil, pos, &DecodeError{Offset: cmd.Offset, Opcode: cmd.Opcode, Err: err}
		}
		pos += 1 + len(cmd.Payload)
	}
	if err := v.resolve(&cfg); err != nil {
		return nil, pos, &DecodeError{Offset: pos, Err: err}
	}
	return v, pos, nil
}

func (v *Voice) apply(cfg *voiceConfig, cmd Command, rate int) error {
	p := cmd.Payload
	switch cmd.Opcode {
	case OpShape:
		s := Shape(p[0])
		if !s.Valid() {
			return ErrInvalidShape
		}
		cfg.shape, cfg.hasShape = s, true
	case OpNoise:
		cfg.noise = true
	case OpHarmonics:
		coefs := make([]float64, len(p)-1)
		for i, b := range p[1:] {
			coefs[i] = float64(b) / 255
		}
		cfg.harmonics, cfg.hasHarm = coefs, true
	case OpFM:
		v.FMRatio = fixed88(p[0:])
		v.FMRange = fixed88(p[2:])
	case OpRate:
		v.Rate = decodeEnvelope(p, 1/float64(rate), rate)
	case OpRateLFO:
		v.RateLFO = LFOParams{
			Rate:  fixed88(p[0:]) / float64(rate),
			Depth: float64(binary.BigEndian.Uint16(p[2:])),
		}
	case OpRange:
		v.Range = decodeEnvelope(p, 1/65536.0, rate)
	case OpRangeLFO:
		v.RangeLFO = LFOParams{
			Rate:  fixed88(p[0:]) / float64(rate),
			Depth: fixed88(p[2:]),
		}
	case OpLevel:
		v.Ops = append(v.Ops, &LevelOp{Env: decodeEnvelope(p, 1/65536.0, rate)})
	case OpGain:
		v.Ops = append(v.Ops, &GainOp{Gain: fixed88(p)})
	case OpClip:
		v.Ops = append(v.Ops, &ClipOp{Threshold: float64(p[0]) / 255})
	case OpDelay:
		ms := int(binary.BigEndian.Uint16(p))
		framec := msToFrames(ms, rate)
		if framec > 0 {
			v.Ops = append(v.Ops, NewDelayOp(framec,
				float64(p[2])/255, float64(p[3])/255,
				float64(p[4])/255, float64(p[5])/255))
		}
	case OpBandpass, OpNotch:
		mid := float64(binary.BigEndian.Uint16(p)) / float64(rate)
		wid := float64(binary.BigEndian.Uint16(p[2:])) / float64(rate)
		if cmd.Opcode == OpBandpass {
			v.Ops = append(v.Ops, NewFilterOp(OpBandpass, BandpassCoefs(mid, wid)))
		} else {
			v.Ops = append(v.Ops, NewFilterOp(OpNotch, NotchCoefs(mid, wid)))
		}
	case OpLopass:
		freq := float64(binary.BigEndian.Uint16(p)) / float64(rate)
		v.Ops = append(v.Ops, NewFilterOp(OpLopass, LopassCoefs(freq)))
	case OpHipass:
		freq := float64(binary.BigEndian.Uint16(p)) / float64(rate)
		v.Ops = append(v.Ops, NewFilterOp(OpHipass, HipassCoefs(freq)))
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// resolve picks the oscillator: shape, then harmonics, then FM, then noise.
func (v *Voice) resolve(cfg *voiceConfig) error {
	switch {
	case cfg.hasShape:
		v.Oscillator, v.Shape = OscShape, cfg.shape
	case cfg.hasHarm:
		v.Oscillator, v.Harmonics = OscHarmonics, cfg.harmonics
	case v.FMRatio != 0 && v.FMRange != 0:
		v.Oscillator = OscFM
	case cfg.noise:
		v.Oscillator = OscNoise
	default:
		v.Oscillator = OscSilence
	}
	switch v.Oscillator {
	case OscShape, OscHarmonics, OscFM:
		if v.Rate == nil {
			return ErrMissingRate
		}
	}
	return nil
}

// decodeEnvelope reads value0, a point count and the points.
// The payload length has already been checked.
func decodeEnvelope(p []byte, norm float64, rate int) *Envelope {
	value0 := float64(binary.BigEndian.Uint16(p)) * norm
	pointc := int(p[2])
	points := make([]Point, pointc)
	for i := range points {
		q := p[3+4*i:]
		ms := int(binary.BigEndian.Uint16(q))
		points[i] = Point{
			Framec: max(1, msToFrames(ms, rate)),
			Value:  float64(binary.BigEndian.Uint16(q[2:])) * norm,
		}
	}
	return NewEnvelope(value0, points...)
}

// fixed88 reads an unsigned 8.8 fixed-point number.
func fixed88(p []byte) float64 {
	return float64(p[0]) + float64(p[1])/256
}

func msToFrames(ms, rate int) int {
	return int(math.Round(float64(ms*rate) / 1000))
}
