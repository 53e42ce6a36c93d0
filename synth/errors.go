// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRate   = errors.New("sample rate out of range")
	ErrShortProgram  = errors.New("sound program shorter than its header")
	ErrZeroDuration  = errors.New("sound program has zero duration")
	ErrStalled       = errors.New("decoding made no progress")
	ErrUnexpectedEOF = errors.New("unexpected end of sound program")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrInvalidShape  = errors.New("unknown shape id")
	ErrMissingRate   = errors.New("pitched oscillator without a rate envelope")
	ErrTooManyPoints = errors.New("envelope has more than 255 points")
	ErrTooManyCoefs  = errors.New("more than 255 harmonic coefficients")
)

// DecodeError reports where in a sound program decoding failed.
type DecodeError struct {
	Offset int    // byte offset of the failing opcode
	Opcode Opcode // zero if the failure is not tied to an opcode
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Opcode == 0 {
		return fmt.Sprintf("pcmprint: offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("pcmprint: offset %d: %s: %v", e.Offset, e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
