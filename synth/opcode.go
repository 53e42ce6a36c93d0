// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// Opcode is the leading byte of one sound program command.
type Opcode uint8

const (
	OpVoice     Opcode = 0x01
	OpShape     Opcode = 0x02 // u8 shape id
	OpNoise     Opcode = 0x03
	OpHarmonics Opcode = 0x04 // u8 count, count x u8 weight
	OpFM        Opcode = 0x05 // u8.8 ratio, u8.8 range
	OpRate      Opcode = 0x06 // envelope, Hz
	OpRateLFO   Opcode = 0x07 // u8.8 Hz, u16 cents
	OpRange     Opcode = 0x08 // envelope, u0.16
	OpRangeLFO  Opcode = 0x09 // u8.8 Hz, u8.8 depth
	OpLevel     Opcode = 0x0a // envelope, u0.16
	OpGain      Opcode = 0x0b // u8.8
	OpClip      Opcode = 0x0c // u0.8
	OpDelay     Opcode = 0x0d // u16 ms, u0.8 dry, wet, store, feedback
	OpBandpass  Opcode = 0x0e // u16 mid Hz, u16 width Hz
	OpNotch     Opcode = 0x0f // u16 mid Hz, u16 width Hz
	OpLopass    Opcode = 0x10 // u16 Hz
	OpHipass    Opcode = 0x11 // u16 Hz
)

var opcodeNames = map[Opcode]string{
	OpVoice:     "VOICE",
	OpShape:     "SHAPE",
	OpNoise:     "NOISE",
	OpHarmonics: "HARMONICS",
	OpFM:        "FM",
	OpRate:      "RATE",
	OpRateLFO:   "RATELFO",
	OpRange:     "RANGE",
	OpRangeLFO:  "RANGELFO",
	OpLevel:     "LEVEL",
	OpGain:      "GAIN",
	OpClip:      "CLIP",
	OpDelay:     "DELAY",
	OpBandpass:  "BANDPASS",
	OpNotch:     "NOTCH",
	OpLopass:    "LOPASS",
	OpHipass:    "HIPASS",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(o))
}

// Known reports whether o is part of the instruction set.
func (o Opcode) Known() bool {
	_, ok := opcodeNames[o]
	return ok
}

// payloadLen returns the payload size of the command starting at src[pos],
// which holds opcode o. Variable-length commands need their header bytes.
func payloadLen(o Opcode, src []byte, pos int) (int, error) {
	switch o {
	case OpVoice, OpNoise:
		return 0, nil
	case OpShape, OpClip:
		return 1, nil
	case OpGain, OpLopass, OpHipass:
		return 2, nil
	case OpFM, OpRateLFO, OpRangeLFO, OpBandpass, OpNotch:
		return 4, nil
	case OpDelay:
		return 6, nil
	case OpHarmonics:
		if pos+1 >= len(src) {
			return 0, ErrUnexpectedEOF
		}
		return 1 + int(src[pos+1]), nil
	case OpRate, OpRange, OpLevel:
		if pos+3 >= len(src) {
			return 0, ErrUnexpectedEOF
		}
		return 3 + 4*int(src[pos+3]), nil
	}
	return 0, ErrUnknownOpcode
}
