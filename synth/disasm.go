// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Instruction is one command of a listing, tagged with the voice it belongs to.
type Instruction struct {
	Command
	Voice int
}

func (in Instruction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%5d  v%-2d %-9s", in.Offset, in.Voice, in.Opcode)
	for _, x := range in.Payload {
		fmt.Fprintf(&b, " %02x", x)
	}
	return strings.TrimRight(b.String(), " ")
}

// Listing is a disassembled sound program.
type Listing struct {
	DurationMs   int
	Voices       int
	Instructions []Instruction
}

// Disassemble splits a program into commands without rendering it.
// Separators are not listed; they only bump the voice index.
func Disassemble(src []byte) (*Listing, error) {
	durationMs, err := Duration(src)
	if err != nil {
		return nil, err
	}
	l := &Listing{DurationMs: durationMs}
	inVoice := false
	for pos := HeaderSize; pos < len(src); {
		if Opcode(src[pos]) == OpVoice {
			if inVoice {
				l.Voices++
				inVoice = false
			}
			pos++
			continue
		}
		cmd, err := nextCommand(src, pos)
		if err != nil {
			return nil, err
		}
		l.Instructions = append(l.Instructions, Instruction{Command: cmd, Voice: l.Voices})
		inVoice = true
		pos += 1 + len(cmd.Payload)
	}
	if inVoice {
		l.Voices++
	}
	return l, nil
}
